package config

import "testing"

func TestEffectiveBoundDefaultsToOneWhenUnset(t *testing.T) {
	c := Config{}
	k, defaulted := c.EffectiveBound()
	if k != 1 || !defaulted {
		t.Errorf("got (%d, %v), want (1, true)", k, defaulted)
	}
}

func TestEffectiveBoundHonorsExplicitValue(t *testing.T) {
	c := Config{Bound: 5, BoundSet: true}
	k, defaulted := c.EffectiveBound()
	if k != 5 || defaulted {
		t.Errorf("got (%d, %v), want (5, false)", k, defaulted)
	}
}

func TestEffectiveBoundHonorsExplicitZero(t *testing.T) {
	c := Config{Bound: 0, BoundSet: true}
	k, defaulted := c.EffectiveBound()
	if k != 0 || defaulted {
		t.Errorf("an explicit --bound=0 should not trigger the advisory default")
	}
}
