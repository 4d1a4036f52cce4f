package cache

// Cache describes an entity of a cache that maps a lock descriptor
// to the owner holding it.
type Cache interface {
	// GetElement gets the owner stored for key from the cache.
	// Getting the object makes it the most recently used object
	// in the cache. This function must be implemented in O(1) complexity.
	// If the object doesn't exist in the cache, an error is raised.
	GetElement(key string) (string, error)
	// PutElement inserts an object into the cache.
	// Putting the object makes it the most recently used object
	// in the cache. This function must be implemented in O(1) complexity.
	// If the object already exists in the cache, an error is raised.
	PutElement(key, owner string) error
	// RemoveElement deletes the object from the cache.
	RemoveElement(key string) error
	// Capacity returns the max capacity of the cache.
	Capacity() int
	// Size returns the number of elements currently in the cache.
	Size() int
	// Full checks whether the cache is full or not. It returns true if the
	// cache is full.
	Full() bool
	// PrintCache prints the cache elements in the decreasing order
	// or use frequency.
	PrintCache()
}
