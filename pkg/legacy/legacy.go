// Package legacy reads every layout the checklist document has been persisted
// in and lifts it into a single intermediate Document.
//
// Each historical layout has its own adapter. Adapters never panic on
// malformed input; a false return is the only failure signal.
package legacy

import (
	"sort"
	"time"

	"tableflip.dev/listplan/pkg/ident"
	"tableflip.dev/listplan/pkg/week"
)

// PlannerID is the reserved id of the locked planner category.
const PlannerID = "planner_locked"

// Shape identifies a historical document layout.
type Shape int

const (
	// ShapeUnknown is anything no adapter accepts.
	ShapeUnknown Shape = iota
	// ShapeFlatItems is a bare array of items, from before lists had names.
	ShapeFlatItems
	// ShapeTopics is {activeTopicId, topics: [...]}.
	ShapeTopics
	// ShapeCategories is {activeCategoryId, categories: [...]} with no planner.
	ShapeCategories
	// ShapeShared is the categories layout carrying remote sharing flags.
	ShapeShared
	// ShapeLockedPlanner is the categories layout with the locked planner
	// pseudo-category. The current layout is of this shape.
	ShapeLockedPlanner
	// ShapeColored is the locked planner layout with palette colours stored
	// on categories and items.
	ShapeColored
)

func (s Shape) String() string {
	switch s {
	case ShapeFlatItems:
		return "flat-items"
	case ShapeTopics:
		return "topics"
	case ShapeCategories:
		return "categories"
	case ShapeShared:
		return "shared"
	case ShapeLockedPlanner:
		return "locked-planner"
	case ShapeColored:
		return "colored"
	default:
		return "unknown"
	}
}

// Item is a checklist entry as found on disk, with ids backfilled.
type Item struct {
	ID           string
	Text         string
	Done         bool
	CreatedAt    float64
	HasCreatedAt bool
}

// Category is a list as found on disk, with ids backfilled.
type Category struct {
	ID     string
	Name   string
	Locked bool
	Items  []Item
}

// Day is one planner record.
type Day struct {
	Note   string
	Worked bool
}

// Document is the best-effort reading of one persisted value.
type Document struct {
	Shape      Shape
	ActiveID   string
	Categories []Category
	// Planner holds day records found anywhere in the document, keyed by
	// canonical YYYY-MM-DD.
	Planner map[string]Day
}

// Adapter reads one historical layout.
type Adapter func(raw any, newID func() string) (*Document, bool)

var adapters = map[Shape]Adapter{
	ShapeFlatItems:     AdaptFlatItems,
	ShapeTopics:        AdaptTopics,
	ShapeCategories:    AdaptCategories,
	ShapeShared:        AdaptShared,
	ShapeLockedPlanner: AdaptLockedPlanner,
	ShapeColored:       AdaptColored,
}

// Detect classifies raw by the markers each layout left behind.
func Detect(raw any) Shape {
	if _, ok := NonEmptyArray(raw); ok {
		return ShapeFlatItems
	}
	obj, ok := Object(raw)
	if !ok {
		return ShapeUnknown
	}
	if cats, ok := NonEmptyArray(obj["categories"]); ok {
		switch {
		case hasColor(cats):
			return ShapeColored
		case hasPlanner(obj, cats):
			return ShapeLockedPlanner
		case hasShared(obj, cats):
			return ShapeShared
		default:
			return ShapeCategories
		}
	}
	if _, ok := NonEmptyArray(obj["topics"]); ok {
		return ShapeTopics
	}
	return ShapeUnknown
}

// Adapt detects the layout of raw and runs the matching adapter. A nil newID
// falls back to ident.New.
func Adapt(raw any, newID func() string) (*Document, bool) {
	adapt, ok := adapters[Detect(raw)]
	if !ok {
		return nil, false
	}
	return adapt(raw, newID)
}

// AdaptFlatItems reads a bare item array into a single unnamed category.
func AdaptFlatItems(raw any, newID func() string) (*Document, bool) {
	arr, ok := NonEmptyArray(raw)
	if !ok {
		return nil, false
	}
	newID = orDefault(newID)
	cat := Category{ID: newID(), Items: readItems(arr, newID)}
	return &Document{Shape: ShapeFlatItems, Categories: []Category{cat}}, true
}

// AdaptTopics reads the topics layout.
func AdaptTopics(raw any, newID func() string) (*Document, bool) {
	obj, ok := Object(raw)
	if !ok {
		return nil, false
	}
	topics, ok := NonEmptyArray(obj["topics"])
	if !ok {
		return nil, false
	}
	newID = orDefault(newID)
	doc := &Document{
		Shape:    ShapeTopics,
		ActiveID: firstID(obj, "activeTopicId", "activeCategoryId"),
	}
	for _, v := range topics {
		t, ok := Object(v)
		if !ok {
			continue
		}
		doc.Categories = append(doc.Categories, readCategory(t, newID, "name", "title"))
	}
	return doc, true
}

// AdaptCategories reads the plain categories layout.
func AdaptCategories(raw any, newID func() string) (*Document, bool) {
	return adaptCategories(raw, newID, ShapeCategories, false)
}

// AdaptShared reads the categories layout with sharing flags. The flags are
// not carried over.
func AdaptShared(raw any, newID func() string) (*Document, bool) {
	return adaptCategories(raw, newID, ShapeShared, false)
}

// AdaptLockedPlanner reads the categories layout with a locked planner
// category, collecting planner days from the document's planner store and
// from inside the locked category.
func AdaptLockedPlanner(raw any, newID func() string) (*Document, bool) {
	return adaptCategories(raw, newID, ShapeLockedPlanner, true)
}

// AdaptColored reads the coloured layout. Colours are presentation only and
// are dropped.
func AdaptColored(raw any, newID func() string) (*Document, bool) {
	return adaptCategories(raw, newID, ShapeColored, true)
}

func adaptCategories(raw any, newID func() string, shape Shape, planner bool) (*Document, bool) {
	obj, ok := Object(raw)
	if !ok {
		return nil, false
	}
	cats, ok := NonEmptyArray(obj["categories"])
	if !ok {
		return nil, false
	}
	newID = orDefault(newID)
	doc := &Document{
		Shape:    shape,
		ActiveID: firstID(obj, "activeCategoryId", "selectedCategoryId"),
	}
	if planner {
		doc.Planner = make(map[string]Day)
		readPlannerStore(doc.Planner, obj["planner"])
		readPlannerStore(doc.Planner, obj["plannerDays"])
	}
	for _, v := range cats {
		c, ok := Object(v)
		if !ok {
			continue
		}
		if planner && isPlannerCategory(c) {
			readNestedDays(doc.Planner, c)
		}
		doc.Categories = append(doc.Categories, readCategory(c, newID, "name"))
	}
	return doc, true
}

func readCategory(c map[string]any, newID func() string, nameFields ...string) Category {
	cat := Category{
		ID:     ID(c["id"]),
		Locked: Truthy(c["locked"]),
	}
	for _, f := range nameFields {
		if name := Text(c[f]); name != "" {
			cat.Name = name
			break
		}
	}
	if cat.ID == "" {
		cat.ID = newID()
	}
	if items, ok := Array(c["items"]); ok {
		cat.Items = readItems(items, newID)
	}
	return cat
}

func readItems(arr []any, newID func() string) []Item {
	items := make([]Item, 0, len(arr))
	for _, v := range arr {
		switch x := v.(type) {
		case string:
			items = append(items, Item{ID: newID(), Text: x})
		case map[string]any:
			it := Item{
				ID:   ID(x["id"]),
				Text: Text(x["text"]),
				Done: Truthy(x["done"]),
			}
			if it.Text == "" {
				it.Text = Text(x["title"])
			}
			if it.ID == "" {
				it.ID = newID()
			}
			it.CreatedAt, it.HasCreatedAt = Number(x["createdAt"])
			items = append(items, it)
		}
	}
	return items
}

// readPlannerStore reads either the week-keyed store
// ({weeks: {monday: {days: [7]}}}) or a date-keyed object.
func readPlannerStore(dst map[string]Day, v any) {
	obj, ok := Object(v)
	if !ok {
		return
	}
	if weeks, ok := Object(obj["weeks"]); ok {
		for _, mondayKey := range sortedKeys(weeks) {
			monday, err := week.ParseKey(mondayKey)
			if err != nil {
				continue
			}
			// Builds east of UTC keyed weeks by the UTC date of local
			// Monday midnight, which is the Sunday before.
			if monday.Weekday() == time.Sunday {
				monday = monday.AddDate(0, 0, 1)
			}
			w, ok := Object(weeks[mondayKey])
			if !ok {
				continue
			}
			days, ok := Array(w["days"])
			if !ok {
				continue
			}
			for i, d := range days {
				if i >= week.Length {
					break
				}
				if day, ok := readDay(d); ok {
					put(dst, week.DateKey(monday.AddDate(0, 0, i)), day)
				}
			}
		}
		return
	}
	for _, key := range sortedKeys(obj) {
		if day, ok := readDay(obj[key]); ok {
			put(dst, key, day)
		}
	}
}

// readNestedDays collects planner records stored inside the locked category,
// either as a days array/object or as items carrying a date.
func readNestedDays(dst map[string]Day, c map[string]any) {
	switch days := c["days"].(type) {
	case []any:
		readDatedList(dst, days)
	case map[string]any:
		readPlannerStore(dst, days)
	}
	if items, ok := Array(c["items"]); ok {
		readDatedList(dst, items)
	}
}

func readDatedList(dst map[string]Day, list []any) {
	for _, v := range list {
		obj, ok := Object(v)
		if !ok {
			continue
		}
		key := Text(obj["date"])
		if key == "" {
			key = Text(obj["key"])
		}
		if day, ok := readDay(obj); ok && key != "" {
			put(dst, key, day)
		}
	}
}

func readDay(v any) (Day, bool) {
	obj, ok := Object(v)
	if !ok {
		return Day{}, false
	}
	note := Text(obj["note"])
	if note == "" {
		note = Text(obj["text"])
	}
	return Day{Note: note, Worked: Truthy(obj["worked"])}, true
}

// put stores day under the canonical form of key. The first record for a
// date wins.
func put(dst map[string]Day, key string, day Day) {
	canonical, ok := week.CanonicalKey(key)
	if !ok {
		return
	}
	if _, exists := dst[canonical]; exists {
		return
	}
	dst[canonical] = day
}

func isPlannerCategory(c map[string]any) bool {
	return ID(c["id"]) == PlannerID || Truthy(c["locked"])
}

func hasColor(cats []any) bool {
	for _, v := range cats {
		c, ok := Object(v)
		if !ok {
			continue
		}
		if _, ok := c["color"]; ok {
			return true
		}
		items, _ := Array(c["items"])
		for _, iv := range items {
			if it, ok := Object(iv); ok {
				if _, ok := it["color"]; ok {
					return true
				}
			}
		}
	}
	return false
}

func hasPlanner(obj map[string]any, cats []any) bool {
	if _, ok := obj["planner"]; ok {
		return true
	}
	if _, ok := obj["plannerDays"]; ok {
		return true
	}
	for _, v := range cats {
		if c, ok := Object(v); ok && isPlannerCategory(c) {
			return true
		}
	}
	return false
}

func hasShared(obj map[string]any, cats []any) bool {
	if _, ok := obj["shared"]; ok {
		return true
	}
	for _, v := range cats {
		if c, ok := Object(v); ok {
			if _, ok := c["shared"]; ok {
				return true
			}
		}
	}
	return false
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDefault(newID func() string) func() string {
	if newID == nil {
		return ident.New
	}
	return newID
}

// PlannerDays reads a standalone planner store, either date-keyed or
// week-keyed. Unusable input yields an empty map.
func PlannerDays(raw any) map[string]Day {
	days := make(map[string]Day)
	readPlannerStore(days, raw)
	return days
}
