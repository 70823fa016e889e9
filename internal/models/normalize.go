package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotArray  = errors.New("collection is not an array")
	ErrNotObject = errors.New("collection entry is not an object")
	ErrBadRating = errors.New("rating must be an integer between 1 and 5")
	ErrBadField  = errors.New("field has an unsupported type")
)

// row is one remote entry with its keys folded to lower case, so that
// "Category" and "category" resolve to the same field.
type row map[string]any

func (r row) value(keys ...string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

func (r row) str(keys ...string) (string, error) {
	v, ok := r.value(keys...)
	if !ok {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrBadField, keys[0])
	}
}

func (r row) rating() (int, error) {
	v, ok := r.value("rating")
	if !ok {
		return 0, ErrBadRating
	}

	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, ErrBadRating
		}
		n = parsed
	default:
		return 0, ErrBadRating
	}

	if n != math.Trunc(n) || n < MinRating || n > MaxRating {
		return 0, ErrBadRating
	}
	return int(n), nil
}

// decodeRows splits a raw array into case-folded rows.
// Any entry that is not an object rejects the whole collection.
func decodeRows(data json.RawMessage) ([]row, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, ErrNotArray
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	rows := make([]row, 0, len(entries))
	for i, entry := range entries {
		var obj map[string]any
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 || entry[0] != '{' {
			return nil, fmt.Errorf("%w: index %d", ErrNotObject, i)
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, fmt.Errorf("%w: index %d: %v", ErrNotObject, i, err)
		}
		r := make(row, len(obj))
		for k, v := range obj {
			r[strings.ToLower(strings.TrimSpace(k))] = v
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func decodeAll[T any](data json.RawMessage, convert func(row) (T, error)) ([]T, error) {
	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for i, r := range rows {
		item, err := convert(r)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// DecodeMenu normalizes a remote menu collection
func DecodeMenu(data json.RawMessage) ([]MenuItem, error) {
	return decodeAll(data, func(r row) (MenuItem, error) {
		var (
			item MenuItem
			err  error
		)
		if item.Category, err = r.str("category"); err != nil {
			return item, err
		}
		if item.Name, err = r.str("name"); err != nil {
			return item, err
		}
		if item.Price, err = r.str("price"); err != nil {
			return item, err
		}
		if item.Description, err = r.str("description"); err != nil {
			return item, err
		}
		item.Image, err = r.str("image")
		return item, err
	})
}

// DecodeReviews normalizes a remote review collection
func DecodeReviews(data json.RawMessage) ([]Review, error) {
	return decodeAll(data, func(r row) (Review, error) {
		var (
			review Review
			err    error
		)
		if review.Name, err = r.str("name"); err != nil {
			return review, err
		}
		if review.Rating, err = r.rating(); err != nil {
			return review, err
		}
		if review.Comment, err = r.str("comment"); err != nil {
			return review, err
		}
		review.Date, err = r.str("date")
		return review, err
	})
}

// DecodeReservations normalizes a remote reservation collection
func DecodeReservations(data json.RawMessage) ([]Reservation, error) {
	return decodeAll(data, func(r row) (Reservation, error) {
		var (
			res Reservation
			err error
		)
		if res.Name, err = r.str("name"); err != nil {
			return res, err
		}
		if res.Email, err = r.str("email"); err != nil {
			return res, err
		}
		if res.Phone, err = r.str("phone"); err != nil {
			return res, err
		}
		if res.Date, err = r.str("date"); err != nil {
			return res, err
		}
		if res.Time, err = r.str("time"); err != nil {
			return res, err
		}
		res.Guests, err = r.str("guests", "partysize", "party_size")
		return res, err
	})
}

// DecodeEvents normalizes a remote event collection. Older sheets name the
// title column "name".
func DecodeEvents(data json.RawMessage) ([]Event, error) {
	return decodeAll(data, func(r row) (Event, error) {
		var (
			event Event
			err   error
		)
		if event.ID, err = r.str("id"); err != nil {
			return event, err
		}
		if event.Title, err = r.str("title", "name"); err != nil {
			return event, err
		}
		if event.Date, err = r.str("date"); err != nil {
			return event, err
		}
		if event.Time, err = r.str("time"); err != nil {
			return event, err
		}
		if event.Description, err = r.str("description"); err != nil {
			return event, err
		}
		if event.Price, err = r.str("price"); err != nil {
			return event, err
		}
		event.Image, err = r.str("image")
		return event, err
	})
}
