package domain

import (
	"testing"
	"time"
)

func TestTopicSchema_RoundTrip(t *testing.T) {
	t.Parallel()

	desc := "All about projects"
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := Topic{
		TopicID: 3, Title: "Projects", Description: &desc, DisplayOrder: 1,
		IsNew: true, Icon: "icon.svg", CreatedAt: now, UpdatedAt: now,
	}

	doc := TopicSchema.Encode(in)
	for _, f := range TopicSchema.Fields {
		if _, ok := doc[f]; !ok {
			t.Errorf("encoded doc is missing field %q", f)
		}
	}

	out, err := TopicSchema.Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.TopicID != 3 || out.Title != "Projects" || *out.Description != desc || !out.IsNew || !out.CreatedAt.Equal(now) {
		t.Fatalf("unexpected topic: %+v", out)
	}
}

func TestTipSchema_DecodeAfterIncrement(t *testing.T) {
	t.Parallel()

	media := &Media{Type: MediaImage, URL: "https://example.com/a.png", AltText: "a"}
	doc := TipSchema.Encode(Tip{TipID: 2001, TopicID: 1, Title: "T", Media: media, DisplayOrder: 0})
	doc[FieldDisplayOrder] = doc[FieldDisplayOrder].(int) + 1

	out, err := TipSchema.Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.DisplayOrder != 1 || out.Media == nil || out.Media.URL != media.URL {
		t.Fatalf("unexpected tip: %+v", out)
	}
}

func TestTipSchema_DecodeNilMedia(t *testing.T) {
	t.Parallel()

	out, err := TipSchema.Decode(TipSchema.Encode(Tip{TipID: 2001}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.Media != nil {
		t.Fatalf("expected nil media, got %+v", out.Media)
	}
}
