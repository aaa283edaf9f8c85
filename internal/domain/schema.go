package domain

import "github.com/grouponesailor/group6-tips-server/internal/store"

// Stored field names.
const (
	FieldTopicID      = "topic_id"
	FieldTipID        = "tip_id"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldDisplayOrder = "display_order"
	FieldIsNew        = "is_new"
	FieldIcon         = "icon"
	FieldMedia        = "media"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
)

// TopicSchema describes the topics collection.
var TopicSchema = store.Schema[Topic]{
	Name: "topics",
	Key:  FieldTopicID,
	Fields: []string{
		FieldTopicID, FieldTitle, FieldDescription, FieldDisplayOrder,
		FieldIsNew, FieldIcon, FieldCreatedAt, FieldUpdatedAt,
	},
	Encode: func(t Topic) store.Doc {
		return store.Doc{
			FieldTopicID:      t.TopicID,
			FieldTitle:        t.Title,
			FieldDescription:  t.Description,
			FieldDisplayOrder: t.DisplayOrder,
			FieldIsNew:        t.IsNew,
			FieldIcon:         t.Icon,
			FieldCreatedAt:    t.CreatedAt,
			FieldUpdatedAt:    t.UpdatedAt,
		}
	},
	Decode: func(d store.Doc) (Topic, error) {
		r := store.NewDocReader(d)
		t := Topic{
			TopicID:      r.Int64(FieldTopicID),
			Title:        r.String(FieldTitle),
			Description:  r.StringPtr(FieldDescription),
			DisplayOrder: r.Int(FieldDisplayOrder),
			IsNew:        r.Bool(FieldIsNew),
			Icon:         r.String(FieldIcon),
			CreatedAt:    r.Time(FieldCreatedAt),
			UpdatedAt:    r.Time(FieldUpdatedAt),
		}
		return t, r.Err()
	},
}

// TipSchema describes the tips collection.
var TipSchema = store.Schema[Tip]{
	Name: "tips",
	Key:  FieldTipID,
	Fields: []string{
		FieldTipID, FieldTopicID, FieldTitle, FieldDescription, FieldMedia,
		FieldDisplayOrder, FieldCreatedAt, FieldUpdatedAt,
	},
	Encode: func(t Tip) store.Doc {
		return store.Doc{
			FieldTipID:        t.TipID,
			FieldTopicID:      t.TopicID,
			FieldTitle:        t.Title,
			FieldDescription:  t.Description,
			FieldMedia:        t.Media,
			FieldDisplayOrder: t.DisplayOrder,
			FieldCreatedAt:    t.CreatedAt,
			FieldUpdatedAt:    t.UpdatedAt,
		}
	},
	Decode: func(d store.Doc) (Tip, error) {
		r := store.NewDocReader(d)
		t := Tip{
			TipID:        r.Int64(FieldTipID),
			TopicID:      r.Int64(FieldTopicID),
			Title:        r.String(FieldTitle),
			Description:  r.String(FieldDescription),
			Media:        store.Value[*Media](r, FieldMedia),
			DisplayOrder: r.Int(FieldDisplayOrder),
			CreatedAt:    r.Time(FieldCreatedAt),
			UpdatedAt:    r.Time(FieldUpdatedAt),
		}
		return t, r.Err()
	},
}
