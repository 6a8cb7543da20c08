package domain

import "errors"

// ErrScriptNotFound is returned when an asset id cannot be found in a store.
var ErrScriptNotFound = errors.New("script not found")

// ErrUnknownNodeType is returned when a factory is asked for an unregistered type id.
var ErrUnknownNodeType = errors.New("unknown node type")

// ErrUnknownDataBinding is returned when a binding node references a missing binding.
var ErrUnknownDataBinding = errors.New("unknown data binding")

// ErrTruncated is returned when a binary archive ends before a field is complete.
var ErrTruncated = errors.New("archive truncated")

// ErrFlowCycle is returned when flow links loop back without passing a suspending node.
var ErrFlowCycle = errors.New("flow cycle")

// ErrHalted is returned when a run stops because its script was halted.
var ErrHalted = errors.New("script halted")
