package btadapter

import (
	"errors"
	"fmt"

	"github.com/joeycumines/behaviorkit/internal/behavior"
	bt "github.com/joeycumines/go-behaviortree"
)

// ErrUnknownStatus is returned for a status that has no counterpart.
var ErrUnknownStatus = errors.New("btadapter: unknown status")

// ToBT converts a behavior status to a go-behaviortree status.
func ToBT(s behavior.Status) (bt.Status, error) {
	switch s {
	case behavior.Running:
		return bt.Running, nil
	case behavior.Success:
		return bt.Success, nil
	case behavior.Failure:
		return bt.Failure, nil
	default:
		return bt.Failure, fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}
}

// FromBT converts a go-behaviortree status to a behavior status.
func FromBT(s bt.Status) (behavior.Status, error) {
	switch s {
	case bt.Running:
		return behavior.Running, nil
	case bt.Success:
		return behavior.Success, nil
	case bt.Failure:
		return behavior.Failure, nil
	default:
		return behavior.Failure, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
}
