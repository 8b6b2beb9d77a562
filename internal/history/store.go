package history

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

type Store struct {
	DB *gorm.DB
}

// Open opens or creates the history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "creating history dir for %s", path)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening history db %s", path)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "history db handle")
	}
	// one connection keeps an in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	s := &Store{DB: db}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if err := s.DB.AutoMigrate(&Run{}); err != nil {
		return errors.Wrap(err, "migrating history db")
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Digest is the hex blake3 hash of a program's source.
func Digest(src string) string {
	sum := blake3.Sum256([]byte(src))
	return hex.EncodeToString(sum[:])
}

// Record stores run, filling in the digest and creation time when unset.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if run.Digest == "" {
		run.Digest = Digest(run.Source)
	}
	if run.CreatedAt == 0 {
		run.CreatedAt = time.Now().Unix()
	}
	if err := s.DB.WithContext(ctx).Create(run).Error; err != nil {
		return errors.Wrap(err, "recording run")
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Run, error) {
	var runs []*Run
	if err := s.DB.WithContext(ctx).Model(&Run{}).
		Order("created_at desc").Order("id desc").
		Limit(limit).Find(&runs).Error; err != nil {
		return nil, errors.Wrap(err, "listing runs")
	}
	return runs, nil
}

// ByDigest returns the runs of one exact source text, newest first.
func (s *Store) ByDigest(ctx context.Context, digest string) ([]*Run, error) {
	var runs []*Run
	if err := s.DB.WithContext(ctx).Model(&Run{}).
		Where("`digest`=?", digest).
		Order("created_at desc").Order("id desc").
		Find(&runs).Error; err != nil {
		return nil, errors.Wrap(err, "finding runs by digest")
	}
	return runs, nil
}

// Prune soft-deletes runs created before cutoff and reports how many.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Where("`created_at` < ?", cutoff.Unix()).Delete(&Run{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "pruning runs")
	}
	return res.RowsAffected, nil
}

// Purge permanently removes soft-deleted runs.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Unscoped().Where("`deleted` = ?", 1).Delete(&Run{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "purging runs")
	}
	return res.RowsAffected, nil
}
