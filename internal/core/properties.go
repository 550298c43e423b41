package core

import (
	"fmt"
	"io"
	"strings"
)

// Unresolved is rendered in place of a property name when a property_id has
// no match in the current registry listing. A missing name is display noise,
// not an error.
const Unresolved = "—"

// PropertyDraft is the submission form for a new property.
type PropertyDraft struct {
	Name        string
	Address     string
	Description string
}

// ImageUpload is a pending image attachment for a property draft.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ValidationError carries field-keyed validation messages for a draft that
// was rejected before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "invalid draft: " + strings.Join(keys, ", ")
}

// PropertyRegistry holds the property listing and the property create/delete
// flows. The listing is a read cache valid only until the next fetch; the
// remote authority owns the data.
type PropertyRegistry struct {
	gateway Gateway
	confirm Confirmer
	logger  Logger

	listing []Property
}

// NewPropertyRegistry creates a registry wired to the given gateway and
// confirmation capability.
func NewPropertyRegistry(gateway Gateway, confirm Confirmer, logger Logger) *PropertyRegistry {
	return &PropertyRegistry{gateway: gateway, confirm: confirm, logger: logger}
}

// List fetches the full property collection and replaces the cached listing.
func (r *PropertyRegistry) List() ([]Property, error) {
	var props []Property
	if err := r.gateway.Get("/properties", &props); err != nil {
		return nil, fmt.Errorf("loading properties: %w", err)
	}
	r.listing = props
	return props, nil
}

// Listing returns the properties from the most recent List call.
func (r *PropertyRegistry) Listing() []Property { return r.listing }

// Validate checks a draft before submission. Name and address must be
// non-empty after trimming. A non-empty map means the draft must not be sent.
func (r *PropertyRegistry) Validate(d PropertyDraft) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "address is required"
	}
	return errs
}

// Create submits a new property. When an image is attached it is uploaded
// first and the returned URL joined into the create payload; an upload
// failure aborts the create entirely. A failed create after a successful
// upload leaves the uploaded asset orphaned.
func (r *PropertyRegistry) Create(d PropertyDraft, image *ImageUpload) error {
	if errs := r.Validate(d); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	imageURL := ""
	if image != nil {
		res, err := r.gateway.Upload("/upload", image.Filename, image.Content)
		if err != nil {
			return fmt.Errorf("uploading image: %w", err)
		}
		imageURL = res.URL
	}

	payload := map[string]any{
		"name":        d.Name,
		"address":     d.Address,
		"description": d.Description,
		"image_url":   imageURL,
	}
	if err := r.gateway.Post("/properties", payload, nil); err != nil {
		return fmt.Errorf("saving property: %w", err)
	}

	r.logger.Info("property created", "name", d.Name)
	return nil
}

// Delete removes a property after confirmation. The prompt names the
// property so the operator knows exactly what is being destroyed. On success
// the id is dropped from the cached listing without a refetch — the sole
// optimistic update in the system.
func (r *PropertyRegistry) Delete(id int, name string) error {
	ok, err := r.confirm.Confirm(fmt.Sprintf("Delete property %q?", name))
	if err != nil {
		return fmt.Errorf("requesting confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}

	if err := r.gateway.Delete(fmt.Sprintf("/properties/%d", id)); err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}

	kept := r.listing[:0]
	for _, p := range r.listing {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.listing = kept

	r.logger.Info("property deleted", "id", id, "name", name)
	return nil
}

// ResolveName maps a property id to its display name against the given
// listing, falling back to the Unresolved placeholder.
func ResolveName(properties []Property, id int) string {
	for _, p := range properties {
		if p.ID == id {
			return p.Name
		}
	}
	return Unresolved
}
