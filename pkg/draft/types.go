package draft

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"peelvsu/intake/pkg/forms"
)

// ErrNotFound is returned when a draft ID does not exist in storage.
var ErrNotFound = errors.New("draft not found")

// Draft is a saved snapshot of an in-progress form.
type Draft struct {
	// ID is a UUID v4, stable across auto-save updates of the same form.
	ID string `json:"id"`

	// FormType is the form family the draft belongs to.
	FormType forms.FormType `json:"form_type"`

	// Values is the field value snapshot.
	Values forms.Values `json:"values"`

	// ContentHash is the SHA-256 of the canonical values encoding, used to
	// skip writes when nothing changed.
	ContentHash string `json:"content_hash"`

	// CreatedAt is when the draft was first saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the draft was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a draft for the given form with a fresh UUID and both
// timestamps set to now.
func New(formType forms.FormType, values forms.Values) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:          uuid.New().String(),
		FormType:    formType,
		Values:      values.Clone(),
		ContentHash: HashValues(values),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Touch refreshes the snapshot with new values, recomputing the content hash
// and bumping UpdatedAt. Reports whether the values actually changed.
func (d *Draft) Touch(values forms.Values) bool {
	hash := HashValues(values)
	if hash == d.ContentHash {
		return false
	}
	d.Values = values.Clone()
	d.ContentHash = hash
	d.UpdatedAt = time.Now().UTC()
	return true
}

// HashValues computes the hex-encoded SHA-256 of the canonical JSON encoding
// of a value mapping. JSON object keys are emitted sorted, so the hash is
// stable across map iteration order. Returns "" only if values is nil-empty
// and encoding somehow fails, which cannot happen for string maps.
func HashValues(values forms.Values) string {
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Storage is the interface draft persistence backends implement.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Save upserts a draft by ID.
	Save(ctx context.Context, d *Draft) error

	// Get returns the draft with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Draft, error)

	// List returns drafts newest-first, filtered by form type when
	// formType is non-empty.
	List(ctx context.Context, formType forms.FormType) ([]*Draft, error)

	// Delete removes a draft by ID. Deleting an absent ID returns
	// ErrNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteOlderThan removes drafts last updated before cutoff and
	// returns the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the total number of stored drafts.
	Count(ctx context.Context) (int64, error)

	// Close releases backend resources.
	Close() error
}
