package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithNotice(t *testing.T) {
	assert.Equal(t, "/stores?notice=Store+created+successfully",
		withNotice("/stores", "Store created successfully"))
}

func TestWithNoticeAppendsToExistingQuery(t *testing.T) {
	got := withNotice("/foods?store_id=3", "Food item deleted successfully")

	assert.Equal(t, "/foods?store_id=3&notice=Food+item+deleted+successfully", got)
}

func TestWithNoticeEscapesMessage(t *testing.T) {
	got := withNotice("/stores", `Error: duplicate key value & more`)

	assert.NotContains(t, got[len("/stores?notice="):], " ")
	assert.NotContains(t, got[len("/stores?notice="):], "&")
}

func TestCleanReferrerEmptyUsesFallback(t *testing.T) {
	assert.Equal(t, "/foods", cleanReferrer("", "/foods"))
}

func TestCleanReferrerKeepsPathAndQuery(t *testing.T) {
	got := cleanReferrer("http://localhost:8080/stores/7?sort_by=rating_desc", "/")

	assert.Equal(t, "/stores/7?sort_by=rating_desc", got)
}

func TestCleanReferrerStripsStaleNotice(t *testing.T) {
	got := cleanReferrer("http://localhost:8080/stores/7?notice=Review+created+successfully", "/")

	assert.Equal(t, "/stores/7", got)
}

func TestCleanReferrerUnparsableUsesFallback(t *testing.T) {
	assert.Equal(t, "/", cleanReferrer("://bad", "/"))
	assert.Equal(t, "/", cleanReferrer("http://localhost:8080", "/"))
}
