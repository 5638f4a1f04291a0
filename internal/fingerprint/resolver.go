package fingerprint

import (
	"fmt"
	"os/user"
	"strconv"
)

// Resolver maps numeric owner and group IDs to names
type Resolver interface {
	UserName(uid uint32) (string, error)
	GroupName(gid uint32) (string, error)
}

// SystemResolver resolves IDs against the local account database,
// caching results for the lifetime of one build
type SystemResolver struct {
	users  map[uint32]string
	groups map[uint32]string
}

// NewSystemResolver creates a resolver backed by os/user
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// UserName returns the login name for uid
func (r *SystemResolver) UserName(uid uint32) (string, error) {
	if name, ok := r.users[uid]; ok {
		return name, nil
	}

	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", fmt.Errorf("failed to resolve uid %d: %w", uid, err)
	}

	r.users[uid] = u.Username
	return u.Username, nil
}

// GroupName returns the group name for gid
func (r *SystemResolver) GroupName(gid uint32) (string, error) {
	if name, ok := r.groups[gid]; ok {
		return name, nil
	}

	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", fmt.Errorf("failed to resolve gid %d: %w", gid, err)
	}

	r.groups[gid] = g.Name
	return g.Name, nil
}
