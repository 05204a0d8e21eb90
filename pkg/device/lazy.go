package device

// lazyBool is a memoized fact: unknown until first resolved, then fixed
// until the owning Properties is reset.
type lazyBool uint8

const (
	unknown lazyBool = iota
	yes
	no
)

// resolve returns the cached value, computing and storing it on first use.
func (c *lazyBool) resolve(compute func() bool) bool {
	switch *c {
	case yes:
		return true
	case no:
		return false
	}
	if compute() {
		*c = yes
		return true
	}
	*c = no
	return false
}
