package entity

import "time"

// Address belongs to exactly one Contact. It is reachable only via
// the ownership chain User -> Contact -> Address.
type Address struct {
	ID         int64
	ContactID  int64
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
