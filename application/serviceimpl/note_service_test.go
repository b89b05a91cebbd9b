package serviceimpl

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/notavel/gofiber-notes-api/domain/dto"
	"github.com/notavel/gofiber-notes-api/domain/models"
	"github.com/notavel/gofiber-notes-api/domain/service"
	"github.com/notavel/gofiber-notes-api/infrastructure/persistence/memory"
)

func newTestNoteService() service.NoteService {
	store := memory.NewEmptyStore()
	return NewNoteService(memory.NewNoteRepository(store))
}

func TestCreateNoteRoundtrip(t *testing.T) {
	svc := newTestNoteService()

	created, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:   "Meeting notes",
		Content: "discuss roadmap",
		Tags:    []string{"work"},
	})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if created.Color != models.DefaultNoteColor {
		t.Errorf("expected default color, got %q", created.Color)
	}
	if created.ReminderRepeat != models.RepeatNone {
		t.Errorf("expected default repeat none, got %q", created.ReminderRepeat)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}

	got, err := svc.GetNote(created.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if got.Title != "Meeting notes" || got.Content != "discuss roadmap" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Errorf("tags mismatch: %v", got.Tags)
	}
}

func TestCreateNoteValidation(t *testing.T) {
	svc := newTestNoteService()

	_, err := svc.CreateNote(&dto.CreateNoteInput{Content: "no title"})
	if err == nil || !dto.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "title is required" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	_, err = svc.CreateNote(&dto.CreateNoteInput{Title: "x", ReminderRepeat: "hourly"})
	if err == nil || !dto.IsValidationError(err) {
		t.Errorf("expected validation error for bad repeat rule, got %v", err)
	}
}

func TestCreateNotePeriodValidation(t *testing.T) {
	svc := newTestNoteService()

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	_, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:     "trip",
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil || !dto.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "end_date must be after start_date" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUpdateNotePartialIsolation(t *testing.T) {
	svc := newTestNoteService()

	created, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:   "original title",
		Content: "original content",
		Tags:    []string{"keep"},
	})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	newTitle := "patched title"
	updated, err := svc.UpdateNote(created.ID, &dto.UpdateNoteInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}

	if updated.Title != "patched title" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	// field ที่ไม่ได้ส่งมาต้องไม่ถูกแตะ
	if updated.Content != "original content" {
		t.Errorf("content must stay untouched: %q", updated.Content)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "keep" {
		t.Errorf("tags must stay untouched: %v", updated.Tags)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated_at was not refreshed")
	}
}

func TestUpdateNoteClearReminderWithNull(t *testing.T) {
	svc := newTestNoteService()

	at := time.Now().Add(time.Hour)
	created, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:        "with reminder",
		ReminderDate: &at,
	})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	// patch อื่นที่ไม่ส่ง reminder_date ต้องไม่แตะ reminder
	newTitle := "still reminded"
	updated, err := svc.UpdateNote(created.ID, &dto.UpdateNoteInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.ReminderDate == nil {
		t.Fatal("reminder must survive a patch that omits reminder_date")
	}

	// ส่ง null ตรงๆ = ล้าง reminder
	var clear dto.UpdateNoteInput
	if err := json.Unmarshal([]byte(`{"reminder_date": null}`), &clear); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	updated, err = svc.UpdateNote(created.ID, &clear)
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.ReminderDate != nil {
		t.Errorf("reminder was not cleared: %v", updated.ReminderDate)
	}
}

func TestUpdateNotePeriodValidationAfterMerge(t *testing.T) {
	svc := newTestNoteService()

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:     "trip",
		StartDate: &start,
	})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	// end_date ใหม่ขัดกับ start_date เดิมที่ merge เข้ามา
	var patch dto.UpdateNoteInput
	if err := json.Unmarshal([]byte(`{"end_date": "2026-03-09T00:00:00Z"}`), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	_, err = svc.UpdateNote(created.ID, &patch)
	if err == nil || err.Error() != "end_date must be after start_date" {
		t.Errorf("expected period validation error, got %v", err)
	}
}

func TestUpdateNoteNotFound(t *testing.T) {
	svc := newTestNoteService()

	title := "x"
	_, err := svc.UpdateNote(uuid.New(), &dto.UpdateNoteInput{Title: &title})
	if err == nil || err.Error() != "note not found" {
		t.Errorf("expected note not found, got %v", err)
	}
}

func TestDeleteNote(t *testing.T) {
	svc := newTestNoteService()

	created, err := svc.CreateNote(&dto.CreateNoteInput{Title: "temp"})
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := svc.DeleteNote(created.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}

	if _, err := svc.GetNote(created.ID); err == nil {
		t.Error("expected not found after delete")
	}

	// ลบซ้ำต้องคืน not found ไม่ใช่ panic หรือ error อื่น
	if err := svc.DeleteNote(created.ID); err == nil || err.Error() != "note not found" {
		t.Errorf("expected note not found on second delete, got %v", err)
	}
}

func TestListNotesExcludesArchivedByDefault(t *testing.T) {
	svc := newTestNoteService()

	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "visible"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "hidden", IsArchived: true}); err != nil {
		t.Fatal(err)
	}

	notes, err := svc.ListNotes(&dto.NoteFilter{})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "visible" {
		t.Fatalf("archived note leaked into default view: %d", len(notes))
	}

	archived, err := svc.ListNotes(&dto.NoteFilter{Archived: true})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(archived) != 1 || archived[0].Title != "hidden" {
		t.Fatalf("archived filter mismatch: %d", len(archived))
	}

	all, err := svc.ListNotes(&dto.NoteFilter{IncludeArchived: true})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("scope=all must include archived, got %d", len(all))
	}
}

func TestListNotesCombinesFiltersWithAnd(t *testing.T) {
	svc := newTestNoteService()

	categoryID := uuid.New()
	if _, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:      "work favorite",
		CategoryID: &categoryID,
		Tags:       []string{"work"},
		IsFavorite: true,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:      "work plain",
		CategoryID: &categoryID,
		Tags:       []string{"work"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:      "other favorite",
		IsFavorite: true,
	}); err != nil {
		t.Fatal(err)
	}

	notes, err := svc.ListNotes(&dto.NoteFilter{
		CategoryID: &categoryID,
		Tag:        "work",
		Favorite:   true,
	})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "work favorite" {
		t.Errorf("AND combination mismatch: got %d results", len(notes))
	}
}

func TestListNotesSearchFilter(t *testing.T) {
	svc := newTestNoteService()

	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "Roadmap", IsFavorite: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "Roadtrip"}); err != nil {
		t.Fatal(err)
	}

	notes, err := svc.ListNotes(&dto.NoteFilter{Search: "road", Favorite: true})
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Roadmap" {
		t.Errorf("search+favorite mismatch: %d", len(notes))
	}
}

func TestSearchNotesBlankQueryReturnsAll(t *testing.T) {
	svc := newTestNoteService()

	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "one"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateNote(&dto.CreateNoteInput{Title: "two"}); err != nil {
		t.Fatal(err)
	}

	notes, err := svc.SearchNotes("   ")
	if err != nil {
		t.Fatalf("SearchNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("blank query must return all notes, got %d", len(notes))
	}
}

func TestFavoriteScenario(t *testing.T) {
	svc := newTestNoteService()

	created, err := svc.CreateNote(&dto.CreateNoteInput{Title: "starred"})
	if err != nil {
		t.Fatal(err)
	}

	fav := true
	if _, err := svc.UpdateNote(created.ID, &dto.UpdateNoteInput{IsFavorite: &fav}); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}

	favorites, err := svc.GetFavoriteNotes()
	if err != nil {
		t.Fatalf("GetFavoriteNotes failed: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != created.ID {
		t.Fatalf("favorite scenario mismatch: %d", len(favorites))
	}

	unfav := false
	if _, err := svc.UpdateNote(created.ID, &dto.UpdateNoteInput{IsFavorite: &unfav}); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	favorites, _ = svc.GetFavoriteNotes()
	if len(favorites) != 0 {
		t.Errorf("unfavorited note still listed: %d", len(favorites))
	}
}

func TestAdvanceReminder(t *testing.T) {
	svc := newTestNoteService()

	past := time.Now().Add(-time.Minute)

	// repeat none: แจ้งแล้วล้าง reminder
	oneShot, err := svc.CreateNote(&dto.CreateNoteInput{Title: "one-shot", ReminderDate: &past})
	if err != nil {
		t.Fatal(err)
	}
	advanced, err := svc.AdvanceReminder(oneShot.ID)
	if err != nil {
		t.Fatalf("AdvanceReminder failed: %v", err)
	}
	if advanced.ReminderDate != nil {
		t.Errorf("one-shot reminder must be cleared, got %v", advanced.ReminderDate)
	}

	// repeat daily: เลื่อนไปรอบถัดไปหลังเวลาปัจจุบัน
	daily, err := svc.CreateNote(&dto.CreateNoteInput{
		Title:          "daily",
		ReminderDate:   &past,
		ReminderRepeat: models.RepeatDaily,
	})
	if err != nil {
		t.Fatal(err)
	}
	advanced, err = svc.AdvanceReminder(daily.ID)
	if err != nil {
		t.Fatalf("AdvanceReminder failed: %v", err)
	}
	if advanced.ReminderDate == nil || !advanced.ReminderDate.After(time.Now()) {
		t.Errorf("daily reminder must advance past now, got %v", advanced.ReminderDate)
	}
}

func TestNextReminderTime(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	base := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rule models.RepeatRule
		want *time.Time
	}{
		{"none", models.RepeatNone, nil},
		{"daily", models.RepeatDaily, timePtr(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))},
		{"weekly", models.RepeatWeekly, timePtr(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))},
		{"monthly", models.RepeatMonthly, timePtr(time.Date(2026, 9, 25, 9, 0, 0, 0, time.UTC))},
		{"yearly", models.RepeatYearly, timePtr(time.Date(2027, 8, 25, 9, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextReminderTime(base, tt.rule, now)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(*tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
