package domain

// NoPrimary marks an unset primary project
const NoPrimary = -1

// Configuration is the persisted process state: which project is primary
// and the last project index handed out.
type Configuration struct {
	PrimaryProject int
	ProjectCounter int
}

// DefaultConfiguration returns the state of a fresh install
func DefaultConfiguration() Configuration {
	return Configuration{PrimaryProject: NoPrimary}
}

// HasPrimary reports whether a primary project is set
func (c Configuration) HasPrimary() bool {
	return c.PrimaryProject >= 0
}

// ClearPrimary unsets the primary project if it is index
func (c *Configuration) ClearPrimary(index int) bool {
	if c.PrimaryProject == index {
		c.PrimaryProject = NoPrimary
		return true
	}
	return false
}

// NextIndex bumps the counter and returns the new value
func (c *Configuration) NextIndex() int {
	if c.ProjectCounter < 0 {
		c.ProjectCounter = 0
	}
	c.ProjectCounter++
	return c.ProjectCounter
}
