package ports

// FolderWatcher watches working copies and reports changes after a quiet period
type FolderWatcher interface {
	// Watch starts watching root recursively. Events are reported under key.
	Watch(key, root string) error
	Unwatch(key string)
	// Events delivers the key of each watched tree that changed
	Events() <-chan string
	Stop()
}
