package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/contactbook-api/config"
	"github.com/oksasatya/contactbook-api/pkg/events"
	"github.com/oksasatya/contactbook-api/pkg/helpers"
)

// Consumes contact events from RabbitMQ and mirrors them into the
// Elasticsearch contacts index. The API stays the source of truth;
// this index only serves ad-hoc analytics, so delivery is at-least-once
// and upserts are idempotent by document id.
func main() {
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQContactQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("elasticsearch client: %v", err)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQContactQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQContactQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			var ev events.ContactEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if err := apply(es, cfg.ESContactsIndex, ev); err != nil {
				log.Printf("apply event contact_id=%d: %v", ev.ContactID, err)
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	log.Printf("indexer consuming queue %q into index %q", cfg.RabbitMQContactQueue, cfg.ESContactsIndex)
	<-stop
	_ = ch.Close()
	<-done
	log.Println("indexer stopped")
}

func apply(es *elasticsearch.Client, index string, ev events.ContactEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	docID := strconv.FormatInt(ev.ContactID, 10)

	if ev.Action == events.ActionDelete {
		req := esapi.DeleteRequest{Index: index, DocumentID: docID}
		res, err := req.Do(ctx, es)
		if err != nil {
			return err
		}
		defer func() { _ = res.Body.Close() }()
		// 404 is fine: the document was never indexed.
		if res.IsError() && res.StatusCode != 404 {
			return errResponse(res)
		}
		return nil
	}

	doc := map[string]any{
		"user_id":    ev.UserID,
		"first_name": ev.FirstName,
		"last_name":  ev.LastName,
		"email":      ev.Email,
		"phone":      ev.Phone,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: index, DocumentID: docID, Body: strings.NewReader(string(b))}
	res, err := req.Do(ctx, es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return errResponse(res)
	}
	return nil
}

type esError struct{ status string }

func (e esError) Error() string { return "elasticsearch: " + e.status }

func errResponse(res *esapi.Response) error {
	return esError{status: res.Status()}
}
