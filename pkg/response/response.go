package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta carries pagination info for list endpoints. CurrentPage echoes
// the requested page even when it lies past the last page of results.
type Meta struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
}

// Data writes a success envelope: {"data": ...}.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// DataWithMeta writes a success envelope with pagination meta.
func DataWithMeta(c *gin.Context, status int, data any, meta Meta) {
	c.JSON(status, gin.H{"data": data, "meta": meta})
}

// Error writes {"errors": {"message": [msg]}} with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"errors": gin.H{"message": []string{msg}}})
}

// ValidationError writes field-level errors as
// {"errors": {field: ["msg", ...]}} with HTTP 400.
func ValidationError(c *gin.Context, details map[string][]string) {
	if len(details) == 0 {
		details = map[string][]string{"payload": {"invalid payload"}}
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": details})
}
