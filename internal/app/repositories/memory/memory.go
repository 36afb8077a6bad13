// Package memory provides process-local repositories used by the "memory"
// database driver and by handler tests.
package memory

import (
	"fmt"
	"sort"
	"time"

	"github.com/yigit/studentrecords/internal/app/repositories"
)

// NewRepositories returns empty in-memory repositories
func NewRepositories() *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository: NewStudentStore(),
		UserRepository:    NewUserStore(),
	}
}

// sortedIDs returns the keys of m in ascending order
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func asString(column string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("column %s: expected string, got %T", column, value)
	}
	return s, nil
}

func asTime(column string, value interface{}) (time.Time, error) {
	t, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("column %s: expected time.Time, got %T", column, value)
	}
	return t, nil
}
