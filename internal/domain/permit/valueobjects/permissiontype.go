package valueobjects

import "fmt"

// PermissionType distinguishes visitor permits from maintenance permits.
type PermissionType string

const (
	TypeVisit       PermissionType = "visit"
	TypeMaintenance PermissionType = "maintenance"
)

func (pt PermissionType) String() string {
	return string(pt)
}

func (pt PermissionType) IsValid() bool {
	switch pt {
	case TypeVisit, TypeMaintenance:
		return true
	}
	return false
}

func (pt PermissionType) IsMaintenance() bool {
	return pt == TypeMaintenance
}

func NewPermissionType(s string) (PermissionType, error) {
	pt := PermissionType(s)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid permission type: %s", s)
	}
	return pt, nil
}
