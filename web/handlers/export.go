package handlers

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/teddylu0219/database-final-project-2025/database"
	"github.com/teddylu0219/database-final-project-2025/query"
)

// ExportFoodRow is one line of the CSV export.
type ExportFoodRow struct {
	FoodID    uint    `json:"food_id"`
	FoodName  string  `json:"food_name"`
	Price     float64 `json:"price"`
	Calories  *int    `json:"calories"`
	StoreName string  `json:"store_name"`
}

var exportHeader = []string{"ID", "食物名稱", "餐廳", "價格", "卡路里"}

// FoodExportCSV streams the filtered food list as a CSV attachment. It
// accepts the same filters as the food listing plus an allow-listed sort
// column.
func FoodExportCSV(c *fiber.Ctx) error {
	db := database.GetDB()

	filter := query.FoodFilter{
		Search:   c.Query("search"),
		StoreID:  c.Query("store_id"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		SortBy:   c.Query("sort_by", "food_id"),
	}

	b := query.FoodExport(filter)

	var rows []ExportFoodRow
	if err := db.Raw(b.SQL(), b.Args()...).Scan(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("pages/500", fiber.Map{
			"Title":  "Error",
			"Active": "",
			"Error": "Unable to export foods: " + err.Error(),
			"Code":  500,
		}, "layouts/base")
	}

	var buf bytes.Buffer
	if err := writeFoodsCSV(&buf, rows); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=foods.csv`)
	return c.Send(buf.Bytes())
}

// writeFoodsCSV renders the export rows as UTF-8 CSV with a byte-order
// marker prefix so spreadsheet software picks the right encoding.
func writeFoodsCSV(w io.Writer, rows []ExportFoodRow) error {
	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, r := range rows {
		calories := ""
		if r.Calories != nil {
			calories = strconv.Itoa(*r.Calories)
		}
		record := []string{
			strconv.FormatUint(uint64(r.FoodID), 10),
			r.FoodName,
			r.StoreName,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			calories,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
