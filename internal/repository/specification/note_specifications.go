package specification

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NoteSearchQuery matches notes whose title or body contains Query,
// case-insensitively. LIKE wildcards in Query are matched literally.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + EscapeLike(s.Query) + "%"
	return db.Where("(title ILIKE ? OR body ILIKE ?)", pattern, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the Postgres LIKE metacharacters using the default
// backslash escape.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// LinksTargetNote selects notes holding at least one edge pointing at NoteID.
// There is no reverse index; this is a containment scan over notes.links.
type LinksTargetNote struct {
	NoteID uuid.UUID
}

func (s LinksTargetNote) Apply(db *gorm.DB) *gorm.DB {
	probe, _ := json.Marshal([]map[string]string{{"targetNoteId": s.NoteID.String()}})
	return db.Where("links @> ?::jsonb", string(probe))
}
