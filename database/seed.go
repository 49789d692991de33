package database

import (
	"fmt"
	"log"
	"time"

	"github.com/teddylu0219/database-final-project-2025/models"
	"gorm.io/gorm"
)

// SeedData seeds initial data into empty tables
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Store{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		locationMap, err := seedLocations(tx)
		if err != nil {
			return fmt.Errorf("failed to seed locations: %w", err)
		}

		categoryMap, err := seedCategories(tx)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		userMap, err := seedUsers(tx)
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		storeMap, err := seedStores(tx, locationMap, categoryMap)
		if err != nil {
			return fmt.Errorf("failed to seed stores: %w", err)
		}

		foodMap, err := seedFoods(tx, storeMap)
		if err != nil {
			return fmt.Errorf("failed to seed foods: %w", err)
		}

		if err := seedReviews(tx, userMap, foodMap); err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}

		log.Println("Seed process completed")
		return nil
	})
}

// seedLocations creates campus location data
func seedLocations(tx *gorm.DB) (map[string]uint, error) {
	locations := []models.Location{
		{Name: "第一餐廳"},
		{Name: "第二餐廳"},
		{Name: "小木屋"},
		{Name: "女二餐廳"},
		{Name: "校門口商圈"},
	}

	if err := tx.Create(&locations).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d locations", len(locations))

	locationMap := make(map[string]uint)
	for _, l := range locations {
		locationMap[l.Name] = l.LocationID
	}
	return locationMap, nil
}

// seedCategories creates store category data
func seedCategories(tx *gorm.DB) (map[string]uint, error) {
	categories := []models.Category{
		{CategoryName: "台式"},
		{CategoryName: "日式"},
		{CategoryName: "麵食"},
		{CategoryName: "便當"},
		{CategoryName: "飲料"},
		{CategoryName: "早餐"},
		{CategoryName: "素食"},
	}

	if err := tx.Create(&categories).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d categories", len(categories))

	categoryMap := make(map[string]uint)
	for _, c := range categories {
		categoryMap[c.CategoryName] = c.CategoryID
	}
	return categoryMap, nil
}

// seedUsers creates reviewer accounts
func seedUsers(tx *gorm.DB) (map[string]uint, error) {
	users := []models.User{
		{Name: "小明"},
		{Name: "小華"},
		{Name: "阿宏"},
		{Name: "怡君"},
	}

	if err := tx.Create(&users).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d users", len(users))

	userMap := make(map[string]uint)
	for _, u := range users {
		userMap[u.Name] = u.UserID
	}
	return userMap, nil
}

// seedStores creates stores with their category links and business hours
func seedStores(tx *gorm.DB, locationMap, categoryMap map[string]uint) (map[string]uint, error) {
	stores := []models.Store{
		{StoreName: "阿婆滷味", LocationID: uintPtr(locationMap["第一餐廳"])},
		{StoreName: "大眾便當", LocationID: uintPtr(locationMap["第一餐廳"])},
		{StoreName: "山口拉麵", LocationID: uintPtr(locationMap["第二餐廳"])},
		{StoreName: "木屋鬆餅", LocationID: uintPtr(locationMap["小木屋"])},
		{StoreName: "清心茶坊", LocationID: uintPtr(locationMap["校門口商圈"])},
		{StoreName: "無名早餐店"}, // no fixed location
	}

	if err := tx.Create(&stores).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d stores", len(stores))

	storeMap := make(map[string]uint)
	for _, s := range stores {
		storeMap[s.StoreName] = s.StoreID
	}

	links := []models.StoreCategory{
		{StoreID: storeMap["阿婆滷味"], CategoryID: categoryMap["台式"]},
		{StoreID: storeMap["大眾便當"], CategoryID: categoryMap["便當"]},
		{StoreID: storeMap["大眾便當"], CategoryID: categoryMap["台式"]},
		{StoreID: storeMap["山口拉麵"], CategoryID: categoryMap["日式"]},
		{StoreID: storeMap["山口拉麵"], CategoryID: categoryMap["麵食"]},
		{StoreID: storeMap["清心茶坊"], CategoryID: categoryMap["飲料"]},
		{StoreID: storeMap["無名早餐店"], CategoryID: categoryMap["早餐"]},
	}
	if err := tx.Create(&links).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d store-category links", len(links))

	var hours []models.BusinessHour
	for day := 1; day <= 5; day++ {
		hours = append(hours,
			models.BusinessHour{StoreID: storeMap["大眾便當"], DayOfWeek: day, No: 1, OpenTime: "11:00", CloseTime: "14:00"},
			models.BusinessHour{StoreID: storeMap["大眾便當"], DayOfWeek: day, No: 2, OpenTime: "17:00", CloseTime: "19:30"},
			models.BusinessHour{StoreID: storeMap["清心茶坊"], DayOfWeek: day, No: 1, OpenTime: "10:00", CloseTime: "21:00"},
		)
	}
	if err := tx.Create(&hours).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d business hour entries", len(hours))

	return storeMap, nil
}

// seedFoods creates menu items
func seedFoods(tx *gorm.DB, storeMap map[string]uint) (map[string]uint, error) {
	foods := []models.Food{
		{FoodName: "綜合滷味", Price: 65, Calories: intPtr(450), StoreID: storeMap["阿婆滷味"]},
		{FoodName: "滷豆干", Price: 20, StoreID: storeMap["阿婆滷味"]},
		{FoodName: "排骨便當", Price: 85, Calories: intPtr(820), StoreID: storeMap["大眾便當"]},
		{FoodName: "雞腿便當", Price: 90, Calories: intPtr(880), StoreID: storeMap["大眾便當"]},
		{FoodName: "豚骨拉麵", Price: 120, Calories: intPtr(650), StoreID: storeMap["山口拉麵"]},
		{FoodName: "味噌拉麵", Price: 110, Calories: intPtr(600), StoreID: storeMap["山口拉麵"]},
		{FoodName: "巧克力鬆餅", Price: 70, Calories: intPtr(520), StoreID: storeMap["木屋鬆餅"]},
		{FoodName: "珍珠奶茶", Price: 50, Calories: intPtr(400), StoreID: storeMap["清心茶坊"]},
		{FoodName: "無糖綠茶", Price: 30, Calories: intPtr(5), StoreID: storeMap["清心茶坊"]},
		{FoodName: "蛋餅", Price: 35, Calories: intPtr(300), StoreID: storeMap["無名早餐店"]},
	}

	if err := tx.Create(&foods).Error; err != nil {
		return nil, err
	}
	log.Printf("  ✓ Seeded %d foods", len(foods))

	foodMap := make(map[string]uint)
	for _, f := range foods {
		foodMap[f.FoodName] = f.FoodID
	}
	return foodMap, nil
}

// seedReviews creates sample reviews spread over the past weeks
func seedReviews(tx *gorm.DB, userMap, foodMap map[string]uint) error {
	now := time.Now()

	reviews := []models.Review{
		{Rating: intPtr(5), CPValue: intPtr(5), Fullness: intPtr(4), Comment: strPtr("便宜又大碗"), UserID: userMap["小明"], FoodID: foodMap["綜合滷味"], Timestamp: now.AddDate(0, 0, -21)},
		{Rating: intPtr(4), CPValue: intPtr(4), Healthy: intPtr(2), Comment: strPtr("排骨炸得酥"), UserID: userMap["小華"], FoodID: foodMap["排骨便當"], Timestamp: now.AddDate(0, 0, -14)},
		{Rating: intPtr(3), Comment: strPtr("普通"), UserID: userMap["阿宏"], FoodID: foodMap["排骨便當"], Timestamp: now.AddDate(0, 0, -10)},
		{Rating: intPtr(5), CPValue: intPtr(3), Comment: strPtr("湯頭濃郁"), UserID: userMap["怡君"], FoodID: foodMap["豚骨拉麵"], Timestamp: now.AddDate(0, 0, -7)},
		{Rating: intPtr(4), Fullness: intPtr(3), UserID: userMap["小明"], FoodID: foodMap["珍珠奶茶"], Timestamp: now.AddDate(0, 0, -3)},
		{Rating: intPtr(2), Healthy: intPtr(5), Comment: strPtr("就是無糖綠"), UserID: userMap["小華"], FoodID: foodMap["無糖綠茶"], Timestamp: now.AddDate(0, 0, -1)},
	}

	if err := tx.Create(&reviews).Error; err != nil {
		return err
	}
	log.Printf("  ✓ Seeded %d reviews", len(reviews))
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
