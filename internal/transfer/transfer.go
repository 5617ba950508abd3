// Package transfer encodes and decodes the JSON exchange format for full
// dataset exports, including the legacy layout of earlier releases.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

// Document is the JSON layout of a full export. Order values travel as
// strings for compatibility with earlier releases.
type Document struct {
	Persons                []PersonRecord   `json:"persons"`
	WorkBehaviorCategories []CategoryRecord `json:"workBehaviorCategories"`
	ActivityAreas          []AreaRecord     `json:"activityAreas"`
	Activities             []ActivityRecord `json:"activities"`
	Goals                  []GoalRecord     `json:"goals"`
}

type PersonRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order string `json:"order"`
}

type CategoryRecord struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Choices  []string `json:"choices"`
	Order    string   `json:"order"`
}

type AreaRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order string `json:"order"`
}

type ActivityRecord struct {
	ID          string `json:"id"`
	AreaID      string `json:"areaId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Measure     string `json:"measure"`
	Order       string `json:"order"`
}

type GoalRecord struct {
	ID          string     `json:"id"`
	PersonID    string     `json:"personId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Measure     string     `json:"measure"`
	DueDate     *string    `json:"dueDate"`
	Status      string     `json:"status"`
	Order       string     `json:"order"`
	CompletedAt *time.Time `json:"completedAt"`
}

// FromSnapshot converts a storage snapshot into the exchange document.
func FromSnapshot(snapshot storage.Snapshot) Document {
	document := Document{
		Persons:                []PersonRecord{},
		WorkBehaviorCategories: []CategoryRecord{},
		ActivityAreas:          []AreaRecord{},
		Activities:             []ActivityRecord{},
		Goals:                  []GoalRecord{},
	}
	for _, person := range snapshot.Persons {
		document.Persons = append(document.Persons, PersonRecord{
			ID:    person.ID,
			Name:  person.Name,
			Order: strconv.Itoa(person.Order),
		})
	}
	for _, category := range snapshot.Categories {
		document.WorkBehaviorCategories = append(document.WorkBehaviorCategories, CategoryRecord{
			ID:       category.ID,
			Category: category.Label,
			Choices:  category.Choices,
			Order:    strconv.Itoa(category.Order),
		})
	}
	for _, area := range snapshot.Areas {
		document.ActivityAreas = append(document.ActivityAreas, AreaRecord{
			ID:    area.ID,
			Name:  area.Name,
			Order: strconv.Itoa(area.Order),
		})
	}
	for _, activity := range snapshot.Activities {
		document.Activities = append(document.Activities, ActivityRecord{
			ID:          activity.ID,
			AreaID:      activity.AreaID,
			Title:       activity.Title,
			Description: activity.Description,
			Measure:     activity.Measure,
			Order:       strconv.Itoa(activity.Order),
		})
	}
	for _, goal := range snapshot.Goals {
		record := GoalRecord{
			ID:          goal.ID,
			PersonID:    goal.PersonID,
			Title:       goal.Title,
			Description: goal.Description,
			Measure:     goal.Measure,
			Status:      string(goal.Status),
			Order:       strconv.Itoa(goal.Order),
			CompletedAt: goal.CompletedAt,
		}
		if goal.DueDate != "" {
			dueDate := goal.DueDate
			record.DueDate = &dueDate
		}
		document.Goals = append(document.Goals, record)
	}
	return document
}

// ToSnapshot converts an exchange document into a storage snapshot. Order
// strings that do not parse fall back to the record's array index.
func ToSnapshot(document Document) storage.Snapshot {
	var snapshot storage.Snapshot
	for index, person := range document.Persons {
		snapshot.Persons = append(snapshot.Persons, storage.Person{
			ID:    person.ID,
			Name:  person.Name,
			Order: parseOrder(person.Order, index),
		})
	}
	for index, category := range document.WorkBehaviorCategories {
		snapshot.Categories = append(snapshot.Categories, storage.WorkBehaviorCategory{
			ID:      category.ID,
			Label:   category.Category,
			Choices: category.Choices,
			Order:   parseOrder(category.Order, index),
		})
	}
	for index, area := range document.ActivityAreas {
		snapshot.Areas = append(snapshot.Areas, storage.ActivityArea{
			ID:    area.ID,
			Name:  area.Name,
			Order: parseOrder(area.Order, index),
		})
	}
	for index, activity := range document.Activities {
		snapshot.Activities = append(snapshot.Activities, storage.Activity{
			ID:          activity.ID,
			AreaID:      activity.AreaID,
			Title:       activity.Title,
			Description: activity.Description,
			Measure:     activity.Measure,
			Order:       parseOrder(activity.Order, index),
		})
	}
	for index, goal := range document.Goals {
		status := storage.GoalStatus(goal.Status)
		if status != storage.GoalStatusCompleted {
			status = storage.GoalStatusOpen
		}
		dueDate := ""
		if goal.DueDate != nil {
			dueDate = *goal.DueDate
		}
		snapshot.Goals = append(snapshot.Goals, storage.Goal{
			ID:          goal.ID,
			PersonID:    goal.PersonID,
			Title:       goal.Title,
			Description: goal.Description,
			Measure:     goal.Measure,
			DueDate:     dueDate,
			Status:      status,
			Order:       parseOrder(goal.Order, index),
			CompletedAt: goal.CompletedAt,
		})
	}
	return snapshot
}

func parseOrder(value string, fallback int) int {
	order, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return order
}

// Decode parses an exported document and returns the snapshot it describes.
// Legacy documents are detected by their nameList array and converted; they
// carry no categories, so the second return value reports the conversion and
// the caller decides which categories to keep.
func Decode(data []byte) (storage.Snapshot, bool, error) {
	var probe struct {
		NameList json.RawMessage `json:"nameList"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return storage.Snapshot{}, false, fmt.Errorf("parse document: %w", err)
	}
	if isJSONArray(probe.NameList) {
		snapshot, err := decodeLegacy(data)
		if err != nil {
			return storage.Snapshot{}, false, err
		}
		return snapshot, true, nil
	}

	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return storage.Snapshot{}, false, fmt.Errorf("parse document: %w", err)
	}
	return ToSnapshot(document), false, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

type legacyGoal struct {
	Text  string `json:"text"`
	Datum string `json:"datum"`
}

// decodeLegacy converts the pre-export layout: a flat nameList, activities
// grouped under their Bereich name, and goals as text/datum pairs. Records
// get deterministic ids derived from their index and a slug of their text.
func decodeLegacy(data []byte) (storage.Snapshot, error) {
	var legacy struct {
		NameList     []string        `json:"nameList"`
		Taetigkeiten json.RawMessage `json:"taetigkeiten"`
		Ziele        []legacyGoal    `json:"ziele"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return storage.Snapshot{}, fmt.Errorf("parse legacy document: %w", err)
	}

	var snapshot storage.Snapshot
	order := 0
	for _, name := range legacy.NameList {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		snapshot.Persons = append(snapshot.Persons, storage.Person{
			ID:    fmt.Sprintf("legacy-%d-%s", order, Slug(name)),
			Name:  name,
			Order: order,
		})
		order++
	}

	areas, activities, err := decodeLegacyAreas(legacy.Taetigkeiten)
	if err != nil {
		return storage.Snapshot{}, err
	}
	snapshot.Areas = areas
	snapshot.Activities = activities

	goalOrder := 0
	for _, ziel := range legacy.Ziele {
		text := strings.TrimSpace(ziel.Text)
		if text == "" {
			continue
		}
		snapshot.Goals = append(snapshot.Goals, storage.Goal{
			ID:      fmt.Sprintf("legacy-goal-%d-%s", goalOrder, Slug(text)),
			Title:   text,
			DueDate: convertLegacyDate(ziel.Datum),
			Status:  storage.GoalStatusOpen,
			Order:   goalOrder,
		})
		goalOrder++
	}
	return snapshot, nil
}

// decodeLegacyAreas walks the taetigkeiten object token by token so areas
// keep the order they have in the document; encoding/json maps would lose it.
func decodeLegacyAreas(raw json.RawMessage) ([]storage.ActivityArea, []storage.Activity, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := decoder.Token(); err != nil {
		return nil, nil, fmt.Errorf("parse taetigkeiten: %w", err)
	}

	var areas []storage.ActivityArea
	var activities []storage.Activity
	areaIndex := 0
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("parse taetigkeiten key: %w", err)
		}
		areaName, ok := keyToken.(string)
		if !ok {
			return nil, nil, fmt.Errorf("parse taetigkeiten key: unexpected token %v", keyToken)
		}
		var titles []string
		if err := decoder.Decode(&titles); err != nil {
			return nil, nil, fmt.Errorf("parse taetigkeiten entries: %w", err)
		}
		if strings.TrimSpace(areaName) == "" {
			continue
		}

		areaID := fmt.Sprintf("legacy-area-%d-%s", areaIndex, Slug(areaName))
		areas = append(areas, storage.ActivityArea{
			ID:    areaID,
			Name:  strings.TrimSpace(areaName),
			Order: areaIndex,
		})
		activityIndex := 0
		for _, title := range titles {
			title = strings.TrimSpace(title)
			if title == "" {
				continue
			}
			activities = append(activities, storage.Activity{
				ID:          fmt.Sprintf("legacy-activity-%d-%d-%s", areaIndex, activityIndex, Slug(title)),
				AreaID:      areaID,
				Title:       title,
				Description: title,
				Order:       activityIndex,
			})
			activityIndex++
		}
		areaIndex++
	}
	return areas, activities, nil
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a url-safe identifier fragment: diacritics folded to their
// base letters, whitespace collapsed to hyphens, everything else dropped.
func Slug(text string) string {
	folded, _, err := transform.String(diacriticStripper, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	var builder strings.Builder
	lastHyphen := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			if !lastHyphen {
				builder.WriteByte('-')
				lastHyphen = true
			}
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-':
			builder.WriteRune(r)
			lastHyphen = r == '-'
		}
	}
	return builder.String()
}

// convertLegacyDate turns DD.MM.YYYY into YYYY-MM-DD. Anything else maps to
// an empty due date.
func convertLegacyDate(value string) string {
	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) != 3 {
		return ""
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}
