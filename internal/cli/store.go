package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/caseforge/pkg/corpus"
)

// storeOpts holds the storage-backend flags shared by the gen, check, and
// viz commands. An empty redisAddr selects the file store rooted at dir.
type storeOpts struct {
	dir           string // base directory for the file store
	redisAddr     string // host:port; non-empty selects the Redis store
	redisDB       int
	redisPassword string
}

// register wires the shared storage flags onto cmd.
func (o *storeOpts) register(cmd *cobra.Command, defaultDir string) {
	cmd.Flags().StringVar(&o.dir, "dir", defaultDir, "corpus directory for the file store")
	cmd.Flags().StringVar(&o.redisAddr, "redis", "", "redis address (host:port); selects the Redis store")
	cmd.Flags().IntVar(&o.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&o.redisPassword, "redis-password", "", "redis password")
}

// open creates the selected store. Callers own the returned store and must
// Close it.
func (o *storeOpts) open(ctx context.Context) (corpus.Store, error) {
	if o.redisAddr != "" {
		return corpus.NewRedisStore(ctx, corpus.RedisConfig{
			Addr:     o.redisAddr,
			Password: o.redisPassword,
			DB:       o.redisDB,
		})
	}
	return corpus.NewFileStore(o.dir)
}
