// File: version.go
// Title: Application Version
// Description: Version designation and data model version of the tool as
//              exposed to templates through the info object.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version defaults of the tool. Build is set at link time:
//
//	go build -ldflags "-X github.com/msto63/st4info/pkg/core/version.Build=123"
var (
	Application = "st4info"
	Major       = 1
	Minor       = 0
	Fix         = 2
	Build       = "0"

	// DataModel is the data model version composed as M*1000+m from the tool
	// version M.m at the last change of the data model.
	DataModel = 1000
)

// AppInfo describes the application a template is expanded by
type AppInfo struct {
	Application string
	Major       int
	Minor       int
	Fix         int
	Build       int
	DataModel   int
}

// Default returns the version of this build
func Default() AppInfo {
	build, err := strconv.Atoi(Build)
	if err != nil {
		build = 0
	}
	return AppInfo{
		Application: Application,
		Major:       Major,
		Minor:       Minor,
		Fix:         Fix,
		Build:       build,
		DataModel:   DataModel,
	}
}

// String returns the version designation M.m.f.b
func (a AppInfo) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a.Major, a.Minor, a.Fix, a.Build)
}

// DataModelKey returns the key under which IsVersionDataModel holds true
func (a AppInfo) DataModelKey() string {
	return "v" + strconv.Itoa(a.DataModel)
}

// IsVersionDataModel returns a map with the single entry DataModelKey: true.
// Templates test it with a map lookup; any other key is absent, i.e. false.
func (a AppInfo) IsVersionDataModel() map[string]bool {
	return map[string]bool{a.DataModelKey(): true}
}

// WithVersion returns a copy with the version parts taken from a designation
// like "1.0.2.17". Missing trailing parts are zero.
func (a AppInfo) WithVersion(designation string) (AppInfo, error) {
	parts := strings.Split(strings.TrimSpace(designation), ".")
	if len(parts) == 0 || len(parts) > 4 || parts[0] == "" {
		return a, fmt.Errorf("invalid version designation %q", designation)
	}

	var nums [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return a, fmt.Errorf("invalid version designation %q", designation)
		}
		nums[i] = n
	}

	a.Major, a.Minor, a.Fix, a.Build = nums[0], nums[1], nums[2], nums[3]
	return a, nil
}
