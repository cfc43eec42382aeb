package hdn

import "errors"

var (
	ErrReadNix  = errors.New("could not read values of the attribute in home.nix")
	ErrWriteNix = errors.New("could not write the attribute for new packages")

	ErrNoHome          = errors.New("could not get $HOME environment variable")
	ErrHomeNixNotFound = errors.New("home.nix was not found in any of the default locations")

	ErrReadFile  = errors.New("could not read home.nix")
	ErrWriteFile = errors.New("could not write to home.nix")
	ErrRollback  = errors.New("switch errored, and during the rollback of home.nix another error occurred")

	ErrSwitchRun          = errors.New("could not run switch command")
	ErrSwitchUnsuccessful = errors.New("switch command returned a non-zero exit code")

	ErrFilter = errors.New("invalid filter")
)
