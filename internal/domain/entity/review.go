package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer's rating of a product. Only the author may change or
// remove it. Nothing prevents the same author from reviewing a product more
// than once, or reviewing a product they never bought.
type Review struct {
	ID         uuid.UUID // The unique identifier for the review.
	AccountID  uuid.UUID // The account ID of the authoring customer.
	ProductID  uuid.UUID // The reviewed product.
	Rating     int       // Star rating, 1 through 5.
	Comment    string    // Free-form comment, at most 500 characters.
	AuthorName string    // Resolved first/last name of the author, filled on read paths only.
	CreatedAt  time.Time // Timestamp of when the review was written.
	UpdatedAt  time.Time // Timestamp of the last edit.
}
