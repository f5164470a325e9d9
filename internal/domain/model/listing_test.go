//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_JSONOmitsMissingID(t *testing.T) {
	body, err := json.Marshal(Listing{Title: "Villa", Images: []string{}})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "_id")
	assert.Contains(t, string(body), `"images":[]`)

	body, err = json.Marshal(Listing{ID: "a1", Title: "Villa"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"_id":"a1"`)
}

func TestListing_DecodesEitherIDKey(t *testing.T) {
	for body, want := range map[string]string{
		`{"_id":"a1","title":"Villa"}`:          "a1",
		`{"id":"7","title":"Villa"}`:            "7",
		`{"_id":"a1","id":"7","title":"Villa"}`: "a1",
		`{"_id":"","id":"7"}`:                   "7",
		`{"title":"Villa"}`:                     "",
	} {
		var l Listing
		require.NoError(t, json.Unmarshal([]byte(body), &l), body)
		assert.Equal(t, want, l.ID, body)
		assert.Equal(t, want == "", l.IsNew(), body)
	}

	var l Listing
	require.Error(t, json.Unmarshal([]byte(`{"id":7}`), &l))
}

func TestListing_PriceAcceptsNumber(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"x","price":250000,"images":["u"]}`), &l))
	assert.Equal(t, FlexString("250000"), l.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":"1,200 SAR"}`), &l))
	assert.Equal(t, "1,200 SAR", l.Price.String())

	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &l))
	assert.Empty(t, l.Price)

	require.Error(t, json.Unmarshal([]byte(`{"price":{}}`), &l))
}

func TestListing_SetField(t *testing.T) {
	l := NewDraft()
	require.NoError(t, l.SetField("Title", "Flat"))
	require.NoError(t, l.SetField(FieldPrice, "900"))
	require.NoError(t, l.SetField(FieldLocation, "Jeddah"))
	require.NoError(t, l.SetField(FieldDescription, "sea view"))
	assert.Equal(t, Listing{Title: "Flat", Price: "900", Location: "Jeddah", Description: "sea view", Images: []string{}}, l)

	require.Error(t, l.SetField("images", "x"))
}

func TestListing_CloneDoesNotAlias(t *testing.T) {
	orig := Listing{ID: "1", Images: []string{"a"}}
	cp := orig.Clone()
	cp.Images[0] = "b"
	assert.Equal(t, "a", orig.Images[0])
	assert.NotNil(t, Listing{}.Clone().Images)
	assert.True(t, Listing{ID: "  "}.IsNew())
}

func TestSettings_SetField(t *testing.T) {
	var s Settings
	require.NoError(t, s.SetField("heroTitle", "Find a home"))
	require.NoError(t, s.SetField("HEROSUBTITLE", "in Jeddah"))
	assert.Equal(t, Settings{HeroTitle: "Find a home", HeroSubtitle: "in Jeddah"}, s)
	require.Error(t, s.SetField("footer", "x"))
}

func TestUploadMessage_SuccessURL(t *testing.T) {
	ok := UploadMessage{Event: &UploadEvent{Event: UploadEventSuccess, Info: UploadInfo{SecureURL: "https://img/1.jpg"}}}
	url, found := ok.SuccessURL()
	assert.True(t, found)
	assert.Equal(t, "https://img/1.jpg", url)

	for _, m := range []UploadMessage{
		{Err: errors.New("widget closed")},
		{Event: &UploadEvent{Event: "queues-end"}},
		{Event: &UploadEvent{Event: UploadEventSuccess}},
		{},
	} {
		_, found := m.SuccessURL()
		assert.False(t, found)
	}
}
