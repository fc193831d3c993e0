package pagination

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cursor.ID != "abc-123" {
		t.Errorf("ID = %s, want abc-123", cursor.ID)
	}
	if !cursor.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", cursor.CreatedAt, created)
	}
}

func TestDecodeCursorEmptyAndInvalid(t *testing.T) {
	empty := &CursorParams{}
	if cursor, err := empty.DecodeCursor(); err != nil || cursor != nil {
		t.Errorf("empty cursor: got %v, %v; want nil, nil", cursor, err)
	}

	bad := &CursorParams{Cursor: "not base64!!"}
	if _, err := bad.DecodeCursor(); err == nil {
		t.Error("invalid cursor: want error")
	}
}

func TestNewCursorPaginationTrimsExtraRow(t *testing.T) {
	type row struct {
		id string
		at time.Time
	}
	now := time.Now()
	rows := []row{
		{"a", now},
		{"b", now.Add(time.Second)},
		{"c", now.Add(2 * time.Second)},
	}

	// Fetched with limit+1; the third row only signals another page
	meta, page := NewCursorPagination(rows, 2,
		func(r row) string { return r.id },
		func(r row) time.Time { return r.at })

	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}
	if !meta.HasNext {
		t.Error("HasNext = false, want true")
	}
	if meta.NextCursor == nil {
		t.Fatal("NextCursor = nil, want cursor for last returned row")
	}
	decoded, err := (&CursorParams{Cursor: *meta.NextCursor}).DecodeCursor()
	if err != nil {
		t.Fatalf("decode next cursor: %v", err)
	}
	if decoded.ID != "b" {
		t.Errorf("next cursor ID = %s, want b", decoded.ID)
	}
}

func TestNewCursorPaginationLastPage(t *testing.T) {
	items := []string{"only"}
	meta, page := NewCursorPagination(items, 5,
		func(s string) string { return s },
		func(string) time.Time { return time.Time{} })

	if len(page) != 1 || meta.HasNext {
		t.Errorf("page = %v, HasNext = %v; want 1 item and no next page", page, meta.HasNext)
	}
}

func TestCursorParamsValidateClamps(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 20},
		{-3, 20},
		{50, 50},
		{500, 100},
	}
	for _, tc := range cases {
		p := &CursorParams{Limit: tc.in}
		p.Validate()
		if p.Limit != tc.want {
			t.Errorf("Validate limit %d = %d, want %d", tc.in, p.Limit, tc.want)
		}
	}
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 25}
	p.Validate()
	if got := p.Offset(); got != 50 {
		t.Errorf("Offset = %d, want 50", got)
	}

	total := NewPagination(3, 25, 120)
	if total.TotalPages != 5 || !total.HasNext || !total.HasPrev {
		t.Errorf("Pagination = %+v, want 5 pages with next and prev", total)
	}
}
