// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint32, *Brush](0)
//	b := c.GetOrCreate(key, func() *Brush { return newBrush(key) })
//
// A limit of 0 keeps every entry. Cache is safe for concurrent use and must
// not be copied after creation.
package cache
