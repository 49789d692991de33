package handlers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestWriteFoodsCSVStartsWithBOM(t *testing.T) {
	var buf bytes.Buffer

	err := writeFoodsCSV(&buf, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteFoodsCSVHeader(t *testing.T) {
	var buf bytes.Buffer

	err := writeFoodsCSV(&buf, nil)

	require.NoError(t, err)
	body := strings.TrimPrefix(buf.String(), "\ufeff")
	assert.Equal(t, "ID,食物名稱,餐廳,價格,卡路里\n", body)
}

func TestWriteFoodsCSVRowsKeepQueryOrder(t *testing.T) {
	rows := []ExportFoodRow{
		{FoodID: 2, FoodName: "B", Price: 30, StoreName: "S1"},
		{FoodID: 1, FoodName: "A", Price: 50, StoreName: "S1"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeFoodsCSV(&buf, rows))

	body := strings.TrimPrefix(buf.String(), "\ufeff")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "食物名稱", "餐廳", "價格", "卡路里"}, records[0])
	assert.Equal(t, []string{"2", "B", "S1", "30", ""}, records[1])
	assert.Equal(t, []string{"1", "A", "S1", "50", ""}, records[2])
}

func TestWriteFoodsCSVCalories(t *testing.T) {
	rows := []ExportFoodRow{
		{FoodID: 1, FoodName: "雞腿便當", Price: 90, Calories: intPtr(880), StoreName: "大眾便當"},
		{FoodID: 2, FoodName: "滷豆干", Price: 20, StoreName: "阿婆滷味"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeFoodsCSV(&buf, rows))

	body := strings.TrimPrefix(buf.String(), "\ufeff")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, "880", records[1][4])
	assert.Equal(t, "", records[2][4])
}

func TestWriteFoodsCSVFractionalPrice(t *testing.T) {
	rows := []ExportFoodRow{{FoodID: 1, FoodName: "A", Price: 49.5, StoreName: "S"}}

	var buf bytes.Buffer
	require.NoError(t, writeFoodsCSV(&buf, rows))

	assert.Contains(t, buf.String(), "49.5")
}
