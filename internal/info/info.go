// File: info.go
// Title: Info Object
// Description: The data object handed to every template of a run. It holds
//              passive metadata about application, time, files and
//              environment, the scratch pad calculator and the four severity
//              commands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package info

import (
	"fmt"
	"os"
	"time"

	"github.com/msto63/st4info/foundation/utils/timex"
	"github.com/msto63/st4info/internal/calc"
	"github.com/msto63/st4info/internal/command"
	"github.com/msto63/st4info/pkg/core/version"
)

// CalcLogContext prefixes every scratch pad error message
const CalcLogContext = "<info.calc>: "

// Options configure a new info object
type Options struct {
	// App is the application version; zero value means version.Default()
	App version.AppInfo

	// Sink receives the command messages, usually the run's logger
	Sink command.Sink

	// Counter counts errors and warnings of the run
	Counter command.Counter

	// Now is the creation time; zero value means time.Now()
	Now time.Time

	// Getenv looks up environment variables; nil means os.Getenv
	Getenv func(string) string
}

// Info is the template info object. Exported fields and methods are
// reachable from templates.
type Info struct {
	Application        string
	Version            string
	VersionMajor       int
	VersionMinor       int
	VersionFix         int
	VersionBuild       int
	VersionDataModel   int
	IsVersionDataModel map[string]bool

	// Time is the creation time formatted as dd.MM.yyyy HH:mm:ss
	Time string
	Year string

	TemplateFile        *FileExt
	TemplateName        string
	TemplateArgNameInfo string

	// TemplateWrapCol is nil if no line wrapping is applied
	TemplateWrapCol *int

	// Output is nil unless the run writes a file
	Output *FileExt

	EnvVarUSERNAME string
	EnvVarHOME     string
	EnvVarTMP      string
	EnvVarOS       string

	Calc *calc.Pad

	Error *command.Command
	Warn  *command.Command
	Info  *command.Command
	Debug *command.Command

	created time.Time
}

// New creates the info object of one run
func New(opts Options) *Info {
	app := opts.App
	if app == (version.AppInfo{}) {
		app = version.Default()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cmds := command.NewSet(command.NewDispatcher(opts.Sink, opts.Counter))

	inf := &Info{
		Time:           timex.Format(now, timex.EuropeanDateTime),
		Year:           timex.Format(now, timex.Year),
		created:        now,
		EnvVarUSERNAME: getenv("USERNAME"),
		EnvVarHOME:     getenv("HOME"),
		EnvVarTMP:      getenv("TMP"),
		EnvVarOS:       getenv("OS"),
		Error:          cmds.Error,
		Warn:           cmds.Warn,
		Info:           cmds.Info,
		Debug:          cmds.Debug,
	}
	inf.Calc = calc.New(inf.Error, CalcLogContext)
	inf.SetApplicationInfo(app)

	return inf
}

// SetApplicationInfo replaces the application name and version
func (i *Info) SetApplicationInfo(app version.AppInfo) {
	i.Application = app.Application
	i.Version = app.String()
	i.VersionMajor = app.Major
	i.VersionMinor = app.Minor
	i.VersionFix = app.Fix
	i.VersionBuild = app.Build
	i.VersionDataModel = app.DataModel
	i.IsVersionDataModel = app.IsVersionDataModel()
}

// SetTemplateInfo records the template in use. wrapCol <= 0 means no wrapping.
func (i *Info) SetTemplateInfo(fileName, templateName, argNameInfo string, wrapCol int) {
	i.TemplateFile = NewFileExt(fileName)
	i.TemplateName = templateName
	i.TemplateArgNameInfo = argNameInfo

	if wrapCol > 0 {
		i.TemplateWrapCol = &wrapCol
	} else {
		i.TemplateWrapCol = nil
	}
}

// SetOutputInfo records the generated output file
func (i *Info) SetOutputInfo(fileName string) {
	i.Output = NewFileExt(fileName)
}

// NoCalcNumbers returns the number of entries in the scratch pad
func (i *Info) NoCalcNumbers() int {
	return i.Calc.Len()
}

// FormatTime formats the creation time with a named layout like "iso8601"
// or a Go layout string
func (i *Info) FormatTime(layout string) string {
	return timex.Format(i.created, layout)
}

// String returns "<application>, version <version>, <time>"
func (i *Info) String() string {
	return fmt.Sprintf("%s, version %s, %s", i.Application, i.Version, i.Time)
}
