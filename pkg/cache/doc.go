// Package cache provides LRU, a size-bounded map shared by request
// goroutines.
//
// The capability matcher keeps one parsed profile per distinct User-Agent
// here. The few UA strings that dominate traffic are parsed once per process,
// and the long tail of unique strings cannot grow memory without bound.
//
//	profiles := cache.NewLRU[string, Profile](4096)
//	if p, ok := profiles.Get(ua); ok {
//		return p
//	}
//	p := compute(ua)
//	profiles.Put(ua, p)
//
// Get and Put are O(1); eviction happens inline in Put. Stored values should
// be immutable.
package cache
