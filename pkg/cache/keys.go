package cache

import (
	"fmt"
	"strings"
)

// cache key for a single house.
func HouseKey(id string) string {
	return fmt.Sprintf("house:%s", id)
}

// cache key for a filtered, paginated house listing. Filter values are
// normalized so equivalent queries share an entry.
func HouseListKey(search, size, bedrooms, city, available string, page, limit int) string {
	return fmt.Sprintf("houses:list:search:%s:size:%s:bedrooms:%s:city:%s:available:%s:page:%d:limit:%d",
		normalize(search), normalize(size), normalize(bedrooms), normalize(city), normalize(available), page, limit)
}

// set of list keys touched since the last invalidation; cleared whenever a
// house is created or mutated.
func HouseListKeysSetKey() string {
	return "houses:list:keys"
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
