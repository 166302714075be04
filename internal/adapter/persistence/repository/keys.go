package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
)

// ErrInvalidID is returned when an id would escape its entity key and land
// on an index key such as <prefix>:ids or <prefix>:email:<addr>.
var ErrInvalidID = errors.New("invalid entity id")

// Key layout shared by every repository.
const (
	proposalPrefix      = "proposal"
	questionnairePrefix = "questionnaire"
	templatePrefix      = "template"
	portalPrefix        = "portal"
	manualClientPrefix  = "manual-client"
	contentPrefix       = "content"
	trackingPrefix      = "track"
)

func entityKey(prefix, id string) string { return prefix + ":" + id }

func idsKey(prefix string) string { return prefix + ":ids" }

func emailKey(prefix, email string) string {
	return prefix + ":email:" + normalizeEmail(email)
}

// View stamps live in a small hash next to the entity document
// (<prefix>:<id>:views) so recording a view never rewrites the document.
const (
	viewFieldCount = "view_count"
	viewFieldLast  = "last_viewed"
)

func viewsKey(prefix, id string) string { return entityKey(prefix, id) + ":views" }

func recordView(ctx context.Context, store kvstore.Store, prefix, id string, at time.Time) error {
	key := viewsKey(prefix, id)
	if _, err := store.HIncrBy(ctx, key, viewFieldCount, 1); err != nil {
		return err
	}
	return store.HSet(ctx, key, map[string]string{viewFieldLast: formatTime(at)})
}

// loadViews reports ok=false when no view was ever recorded.
func loadViews(ctx context.Context, store kvstore.Store, prefix, id string) (last *time.Time, count int, ok bool, err error) {
	h, err := store.HGetAll(ctx, viewsKey(prefix, id))
	if err != nil || len(h) == 0 {
		return nil, 0, false, err
	}
	count, _ = strconv.Atoi(h[viewFieldCount])
	if t := parseTime(h[viewFieldLast]); !t.IsZero() {
		last = &t
	}
	return last, count, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

// getJSON loads the JSON document of an entity; ok is false when the key is
// absent or id cannot name an entity.
func getJSON[T any](ctx context.Context, store kvstore.Store, prefix, id string) (T, bool, error) {
	var out T
	if !ids.Valid(id) {
		return out, false, nil
	}
	raw, ok, err := store.Get(ctx, entityKey(prefix, id))
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, false, err
	}
	return out, true, nil
}

// loadMembers resolves every id of an index set, skipping ids whose document
// is gone.
func loadMembers[T any](ctx context.Context, store kvstore.Store, setKey string, load func(context.Context, string) (T, bool, error)) ([]T, error) {
	members, err := store.SMembers(ctx, setKey)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(members))
	for _, id := range members {
		v, ok, err := load(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}
