package services

import (
	"errors"

	"foodlog/models"
	"foodlog/repositories"
	"foodlog/utils"

	"github.com/google/uuid"
)

const defaultPortionGrams = 100.0

type DiaryService struct {
	entries *repositories.DiaryRepository
	users   *repositories.UserRepository
	catalog *FoodCatalogService
	hub     *RealtimeHub // optional; nil disables pushes
}

func NewDiaryService(
	entries *repositories.DiaryRepository,
	users *repositories.UserRepository,
	catalog *FoodCatalogService,
	hub *RealtimeHub,
) *DiaryService {
	return &DiaryService{entries: entries, users: users, catalog: catalog, hub: hub}
}

// DiaryItemRequest is one logged item. PortionG is a pointer so an absent
// portion (entry falls back to the 100g default) is distinguishable from a
// present-but-invalid one, which rejects the whole request.
type DiaryItemRequest struct {
	FoodName string   `json:"food_name" binding:"required"`
	PortionG *float64 `json:"portion_g" binding:"omitempty,gt=0"`
	Calories float64  `json:"calories"`
	Macros   struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
	} `json:"macros"`
}

func (it DiaryItemRequest) portionGrams() float64 {
	if it.PortionG != nil {
		return *it.PortionG
	}
	return 0
}

type CreateEntryRequest struct {
	Date     string             `json:"date" binding:"required,datetime=2006-01-02"`
	MealType string             `json:"meal_type" binding:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
	Items    []DiaryItemRequest `json:"items"`
	ImageKey string             `json:"image_key"`
	Note     string             `json:"note"`
}

// UpdateEntryRequest carries partial-update semantics: a nil field is
// left untouched, a present portion triggers a proportional rescale.
type UpdateEntryRequest struct {
	PortionG *float64 `json:"portion_g"`
	Note     *string  `json:"note"`
}

// How an entry was produced. A single item submitted together with an
// image reference came through recognition and gets a catalog link;
// everything else is a manual log with no link.
type entryKind int

const (
	manualMultiItem entryKind = iota
	recognizedSingleItem
)

func classifyEntry(req *CreateEntryRequest) entryKind {
	if len(req.Items) == 1 && req.ImageKey != "" {
		return recognizedSingleItem
	}
	return manualMultiItem
}

func itemTotals(items []DiaryItemRequest) []utils.Totals {
	out := make([]utils.Totals, 0, len(items))
	for _, it := range items {
		out = append(out, utils.Totals{
			Calories: it.Calories,
			Protein:  it.Macros.Protein,
			Carbs:    it.Macros.Carbs,
			Fat:      it.Macros.Fat,
		})
	}
	return out
}

// Create logs a new diary entry for userID. Catalog resolution happens
// before the entry is written, so a failed resolution leaves no orphan
// entry behind.
func (s *DiaryService) Create(userID uint, req *CreateEntryRequest) (*models.DiaryEntry, error) {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// a present portion must be valid; only an absent one may default
	for _, it := range req.Items {
		if it.PortionG == nil {
			continue
		}
		if err := utils.ValidatePortion(*it.PortionG); err != nil {
			return nil, err
		}
	}

	var foodID *string
	if classifyEntry(req) == recognizedSingleItem {
		it := req.Items[0]
		food, err := s.catalog.ResolveOrCreate(it.FoodName, it.portionGrams(), utils.Totals{
			Calories: it.Calories,
			Protein:  it.Macros.Protein,
			Carbs:    it.Macros.Carbs,
			Fat:      it.Macros.Fat,
		})
		if err != nil {
			return nil, err
		}
		foodID = &food.ID
	}

	totals := utils.Round(utils.SumItems(itemTotals(req.Items)))
	portion := defaultPortionGrams
	if len(req.Items) > 0 && req.Items[0].PortionG != nil {
		portion = *req.Items[0].PortionG
	}

	entry := &models.DiaryEntry{
		ID:       uuid.NewString(),
		UserID:   userID,
		FoodID:   foodID,
		MealType: req.MealType,
		Date:     req.Date,
		Portion:  portion,
		Calories: int(totals.Calories),
		Protein:  int(totals.Protein),
		Carbs:    int(totals.Carbs),
		Fat:      int(totals.Fat),
		Note:     req.Note,
	}
	if err := s.entries.Create(entry); err != nil {
		return nil, err
	}

	created, err := s.entries.GetByID(entry.ID)
	if err != nil {
		return nil, err
	}
	s.hub.BroadcastDiaryEvent(userID, "entry.created", created)
	return created, nil
}

// ListByDate returns the user's entries for one date, oldest first.
func (s *DiaryService) ListByDate(userID uint, date string) ([]models.DiaryEntry, error) {
	return s.entries.ListByUserAndDate(userID, date)
}

// Update applies a partial update to one entry. A changed portion rescales
// the stored totals by newPortion/oldPortion in a single rounding step;
// submitting the same portion again is a no-op, so repeated identical
// updates never drift. Multi-item entries store only aggregate totals, so
// the aggregate is scaled uniformly.
func (s *DiaryService) Update(userID uint, entryID string, req *UpdateEntryRequest) (*models.DiaryEntry, error) {
	entry, err := s.getOwned(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.PortionG != nil && *req.PortionG != entry.Portion {
		rescaled, err := utils.Rescale(utils.Totals{
			Calories: float64(entry.Calories),
			Protein:  float64(entry.Protein),
			Carbs:    float64(entry.Carbs),
			Fat:      float64(entry.Fat),
		}, entry.Portion, *req.PortionG)
		if err != nil {
			return nil, err
		}
		entry.Portion = *req.PortionG
		entry.Calories = int(rescaled.Calories)
		entry.Protein = int(rescaled.Protein)
		entry.Carbs = int(rescaled.Carbs)
		entry.Fat = int(rescaled.Fat)
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	if err := s.entries.Save(entry); err != nil {
		return nil, err
	}
	s.hub.BroadcastDiaryEvent(userID, "entry.updated", entry)
	return entry, nil
}

// Remove deletes one entry. The linked catalog record, if any, outlives it.
func (s *DiaryService) Remove(userID uint, entryID string) (string, error) {
	entry, err := s.getOwned(userID, entryID)
	if err != nil {
		return "", err
	}
	if err := s.entries.Delete(entry.ID); err != nil {
		return "", err
	}
	s.hub.BroadcastDiaryEvent(userID, "entry.deleted", map[string]string{"id": entry.ID})
	return entry.ID, nil
}

func (s *DiaryService) getOwned(userID uint, entryID string) (*models.DiaryEntry, error) {
	entry, err := s.entries.GetByID(entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	// someone else's entry is indistinguishable from a missing one
	if entry.UserID != userID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}
