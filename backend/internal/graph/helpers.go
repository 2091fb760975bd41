package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Helper Functions
// ============================================================================

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getIntFromRecord(record *neo4j.Record, key string) int {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return int(i)
	}
	if i, ok := val.(int); ok {
		return i
	}
	return 0
}

func getFloat64FromRecord(record *neo4j.Record, key string) float64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0.0
	}
	if f, ok := val.(float64); ok {
		return f
	}
	if i, ok := val.(int64); ok {
		return float64(i)
	}
	return 0.0
}

func getStringSliceFromRecord(record *neo4j.Record, key string) []string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return []string{}
	}
	if slice, ok := val.([]interface{}); ok {
		result := make([]string, 0, len(slice))
		for _, v := range slice {
			if str, ok := v.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return []string{}
}

func getStringSliceListFromRecord(record *neo4j.Record, key string) [][]string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return [][]string{}
	}
	if outer, ok := val.([]interface{}); ok {
		result := make([][]string, 0, len(outer))
		for _, inner := range outer {
			items, ok := inner.([]interface{})
			if !ok {
				continue
			}
			list := make([]string, 0, len(items))
			for _, v := range items {
				if str, ok := v.(string); ok {
					list = append(list, str)
				}
			}
			result = append(result, list)
		}
		return result
	}
	return [][]string{}
}

func getTimeFromRecord(record *neo4j.Record, key string) time.Time {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return time.Time{}
	}
	// Neo4j datetime values come back as time.Time
	if t, ok := val.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func userFromRecord(record *neo4j.Record) User {
	return User{
		ID:              getStringFromRecord(record, "id"),
		Username:        getStringFromRecord(record, "username"),
		Age:             getIntFromRecord(record, "age"),
		Hobbies:         getStringSliceFromRecord(record, "hobbies"),
		Friends:         getStringSliceFromRecord(record, "friends"),
		PopularityScore: getFloat64FromRecord(record, "popularity_score"),
		CreatedAt:       getTimeFromRecord(record, "created_at"),
		UpdatedAt:       getTimeFromRecord(record, "updated_at"),
	}
}
