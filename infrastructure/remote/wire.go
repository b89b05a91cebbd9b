// infrastructure/remote/wire.go

package remote

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/types"
)

// wire structs - รูปแบบข้อมูลบนสาย (snake_case + วันที่เป็น RFC3339 string)
// แปลงเข้า/ออกจาก models ที่ขอบของ backend นี้เสมอ

type wireNote struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Content        string                `json:"content"`
	CategoryID     *string               `json:"category_id"`
	Tags           []string              `json:"tags"`
	Checklist      []types.ChecklistItem `json:"checklist"`
	ReminderDate   *string               `json:"reminder_date"`
	ReminderRepeat string                `json:"reminder_repeat"`
	Color          string                `json:"color"`
	StartDate      *string               `json:"start_date"`
	EndDate        *string               `json:"end_date"`
	IsFavorite     bool                  `json:"is_favorite"`
	IsArchived     bool                  `json:"is_archived"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

type wireCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

type wireTag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func parseTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", *s, err)
	}
	return &t, nil
}

func toWireNote(n *models.Note) *wireNote {
	w := &wireNote{
		ID:             n.ID.String(),
		Title:          n.Title,
		Content:        n.Content,
		Tags:           []string(n.Tags),
		Checklist:      []types.ChecklistItem(n.Checklist),
		ReminderDate:   formatTime(n.ReminderDate),
		ReminderRepeat: string(n.ReminderRepeat),
		Color:          n.Color,
		StartDate:      formatTime(n.StartDate),
		EndDate:        formatTime(n.EndDate),
		IsFavorite:     n.IsFavorite,
		IsArchived:     n.IsArchived,
		CreatedAt:      n.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      n.UpdatedAt.Format(time.RFC3339Nano),
	}
	if n.CategoryID != nil {
		s := n.CategoryID.String()
		w.CategoryID = &s
	}
	return w
}

func fromWireNote(w *wireNote) (*models.Note, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid note id %q: %w", w.ID, err)
	}

	note := &models.Note{
		ID:             id,
		Title:          w.Title,
		Content:        w.Content,
		Tags:           types.StringArray(w.Tags),
		Checklist:      types.ChecklistItems(w.Checklist),
		ReminderRepeat: models.RepeatRule(w.ReminderRepeat),
		Color:          w.Color,
		IsFavorite:     w.IsFavorite,
		IsArchived:     w.IsArchived,
	}
	if note.Tags == nil {
		note.Tags = types.StringArray{}
	}
	if note.Checklist == nil {
		note.Checklist = types.ChecklistItems{}
	}
	if note.ReminderRepeat == "" {
		note.ReminderRepeat = models.RepeatNone
	}

	if w.CategoryID != nil && *w.CategoryID != "" {
		categoryID, err := uuid.Parse(*w.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q: %w", *w.CategoryID, err)
		}
		note.CategoryID = &categoryID
	}

	if note.ReminderDate, err = parseTime(w.ReminderDate); err != nil {
		return nil, err
	}
	if note.StartDate, err = parseTime(w.StartDate); err != nil {
		return nil, err
	}
	if note.EndDate, err = parseTime(w.EndDate); err != nil {
		return nil, err
	}

	createdAt, err := parseTime(&w.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt != nil {
		note.CreatedAt = *createdAt
	}
	updatedAt, err := parseTime(&w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if updatedAt != nil {
		note.UpdatedAt = *updatedAt
	}

	return note, nil
}

func fromWireNotes(ws []*wireNote) ([]*models.Note, error) {
	notes := make([]*models.Note, 0, len(ws))
	for _, w := range ws {
		note, err := fromWireNote(w)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func fromWireCategory(w *wireCategory) (*models.Category, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id %q: %w", w.ID, err)
	}

	category := &models.Category{
		ID:    id,
		Name:  w.Name,
		Color: w.Color,
	}
	createdAt, err := parseTime(&w.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt != nil {
		category.CreatedAt = *createdAt
	}
	return category, nil
}

func fromWireTag(w *wireTag) (*models.Tag, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid tag id %q: %w", w.ID, err)
	}

	tag := &models.Tag{
		ID:   id,
		Name: w.Name,
	}
	createdAt, err := parseTime(&w.CreatedAt)
	if err != nil {
		return nil, err
	}
	if createdAt != nil {
		tag.CreatedAt = *createdAt
	}
	return tag, nil
}
