package sprig

import "errors"

var (
	// ErrNotInitialized is returned when a node or scene is created against a
	// Context whose engine has not been initialized.
	ErrNotInitialized = errors.New("sprig: engine not initialized")

	// ErrContextClosed is returned when a closed Context is used again.
	ErrContextClosed = errors.New("sprig: context closed")

	// ErrEmptyKey is returned by NewNode for an empty key.
	ErrEmptyKey = errors.New("sprig: empty node key")

	// ErrNodeDestroyed is returned when a destroyed node is used as a parent.
	ErrNodeDestroyed = errors.New("sprig: node destroyed")

	// ErrAlreadyRendered is returned by a second Scene.Render call.
	ErrAlreadyRendered = errors.New("sprig: scene already rendered")

	// ErrSceneDestroyed is returned by Render on a destroyed scene.
	ErrSceneDestroyed = errors.New("sprig: scene destroyed")

	// ErrForeignPrimitive is returned by an engine handed a parent primitive
	// it did not create.
	ErrForeignPrimitive = errors.New("sprig: primitive belongs to another engine")
)
