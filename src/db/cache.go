package db

import (
	"fmt"
	"log"

	"github.com/dgraph-io/ristretto"
)

var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SummaryCacheKey(userID int64) string {
	return fmt.Sprintf("summary:%d", userID)
}

func GoalsCacheKey(userID int64) string {
	return fmt.Sprintf("goals:%d", userID)
}

// InvalidateUserCaches drops a user's cached summary and goal list.
// Every income, goal, and investment mutation must call this.
func InvalidateUserCaches(userID int64) {
	Cache.Del(SummaryCacheKey(userID))
	Cache.Del(GoalsCacheKey(userID))
}
