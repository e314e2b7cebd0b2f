package main

import (
	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/config"
	"github.com/arthur-debert/marks/pkg/logging"
	"github.com/arthur-debert/marks/pkg/manager"
	"github.com/arthur-debert/marks/pkg/output"
	"github.com/arthur-debert/marks/pkg/store"
)

// session bundles the loaded manager with the store it came from
type session struct {
	cfg *config.Config
	mgr *manager.Manager
	st  *store.Store
}

// openSession loads config, opens the store and builds a manager with
// the persisted tree. A logging listener is registered, which also
// makes fixture seeding kick in when enabled on an empty tree.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	output.SetColorMode(cfg.Color)

	path := cfg.StorePath
	if path == "" {
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	var opts []manager.Option
	if cfg.SeedEnabled {
		opts = append(opts, manager.WithSeeding())
	}
	mgr := manager.New(opts...)

	st := store.New(path)
	if err := st.Load(mgr); err != nil {
		return nil, err
	}
	mgr.AddListener(&eventLogger{})

	return &session{cfg: cfg, mgr: mgr, st: st}, nil
}

// save persists the manager's tree back to the store
func (s *session) save() error {
	return s.st.Save(s.mgr)
}

// eventLogger is the CLI's listener: it traces tree mutations to the
// debug log
type eventLogger struct{}

func (e *eventLogger) ParentChanged(parent *bookmarks.Directory) {
	log := logging.GetLogger("cli")
	log.Debug().Str("parent", parent.ID()).Msg("children changed")
}

func (e *eventLogger) ItemAdded(node bookmarks.Node) {
	log := logging.GetLogger("cli")
	log.Debug().Str("node", node.ID()).Msg("item added")
}

func (e *eventLogger) ItemRemoved(node bookmarks.Node) {
	log := logging.GetLogger("cli")
	log.Debug().Str("node", node.ID()).Msg("item removed")
}

func (e *eventLogger) ItemUpdated(node bookmarks.Node) {
	log := logging.GetLogger("cli")
	log.Debug().Str("node", node.ID()).Msg("item updated")
}
