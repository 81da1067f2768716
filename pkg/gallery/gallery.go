// Package gallery stores rendered figures so they can be listed, fetched
// and previewed later by the CLI and the HTTP server.
//
// Two backends are provided:
//   - file: JSON files in a config directory, used by the CLI
//   - mongo: MongoDB collection, used by the server
//
// Figures are identified by a UUID and carry the TikZ source they were
// rendered from plus an optional PNG preview.
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tikzgo/tikzgo/pkg/errors"
)

// Figure is a stored drawing with its source and rendered preview.
type Figure struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Source    string    `json:"source" bson:"source"`
	PNG       []byte    `json:"png,omitempty" bson:"png,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for figure storage backends.
type Store interface {
	// Get retrieves a figure by ID. Returns an error with code
	// FIGURE_NOT_FOUND if no figure has that ID.
	Get(ctx context.Context, id string) (*Figure, error)

	// GetByName retrieves the figure with the given name. Names are
	// unique within a store; Put replaces a same-named figure.
	GetByName(ctx context.Context, name string) (*Figure, error)

	// List returns all figures ordered by creation time.
	List(ctx context.Context) ([]*Figure, error)

	// Put stores a figure, replacing any existing figure with the same ID.
	Put(ctx context.Context, fig *Figure) error

	// Delete removes a figure by ID.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// New creates a figure with a fresh ID and the current timestamp.
func New(name, source string) (*Figure, error) {
	if err := errors.ValidateFigureName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Figure{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeFigureNotFound, "figure %q not found", id)
}
