package snapshot

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/cuemby/warren/pkg/cas"
	"github.com/cuemby/warren/pkg/types"
)

// FilesystemDriver captures and reinstates a capsule's rootfs. The CAS-tar
// driver works on any filesystem; the btrfs and zfs drivers use native
// snapshots for the capture step and still land the bytes in the CAS so
// the snapshot record stays a plain digest either way.
type FilesystemDriver interface {
	// Snapshot captures the tree rooted at path into the CAS and returns
	// the resulting digest.
	Snapshot(ctx context.Context, path string) (types.Digest, error)

	// Restore materializes a previously captured tree at path.
	Restore(ctx context.Context, d types.Digest, path string) error
}

// NewDriver selects a filesystem driver by name: "btrfs", "zfs", or
// "auto" (the CAS-tar fallback, always available).
func NewDriver(name string, blobs *cas.Store) (FilesystemDriver, error) {
	switch name {
	case "", "auto":
		return &tarDriver{blobs: blobs}, nil
	case "btrfs":
		return &btrfsDriver{tarDriver{blobs: blobs}}, nil
	case "zfs":
		return &zfsDriver{tarDriver{blobs: blobs}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown filesystem driver %q", ErrSnapshotFailed, name)
	}
}

// tarDriver is the portable fallback: it tars the rootfs into a single
// CAS blob and untars on restore.
type tarDriver struct {
	blobs *cas.Store
}

func (t *tarDriver) Snapshot(ctx context.Context, path string) (types.Digest, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err := filepath.Walk(path, func(file string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel, err := filepath.Rel(path, file)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		link := ""
		if fi.Mode()&os.ModeSymlink != 0 {
			if link, err = os.Readlink(file); err != nil {
				return err
			}
		}
		hdr, err := tar.FileInfoHeader(fi, link)
		if err != nil {
			return err
		}
		hdr.Name = rel
		// Zero the times so identical trees produce identical digests.
		hdr.ModTime = zeroTime
		hdr.AccessTime = zeroTime
		hdr.ChangeTime = zeroTime
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	if err := tw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}

	d, err := t.blobs.Put(buf.Bytes(), types.ObjectKindCapsule)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}
	return d, nil
}

func (t *tarDriver) Restore(ctx context.Context, d types.Digest, path string) error {
	data, err := t.blobs.Get(d)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}

	tr := tar.NewReader(bytes.NewReader(data))
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
		}
		target, err := securePath(path, hdr.Name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(hdr.Mode)); err != nil {
				return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
			}
		case tar.TypeSymlink:
			_ = os.Remove(target)
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
			}
			f.Close()
		}
	}
}

// securePath joins name under root and rejects entries that escape it.
func securePath(root, name string) (string, error) {
	target := filepath.Join(root, name)
	if !strings.HasPrefix(target, filepath.Clean(root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("tar entry escapes root: %s", name)
	}
	return target, nil
}

// btrfsDriver snapshots via `btrfs subvolume snapshot -r` to get a
// read-only, crash-consistent capture, then tars the snapshot into the
// CAS and deletes the subvolume.
type btrfsDriver struct {
	tarDriver
}

func (b *btrfsDriver) Snapshot(ctx context.Context, path string) (types.Digest, error) {
	snapPath := path + ".snap"
	if out, err := exec.CommandContext(ctx, "btrfs", "subvolume", "snapshot", "-r", path, snapPath).CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: btrfs snapshot: %v: %s", ErrSnapshotFailed, err, out)
	}
	defer func() {
		_ = exec.Command("btrfs", "subvolume", "delete", snapPath).Run()
	}()
	return b.tarDriver.Snapshot(ctx, snapPath)
}

// zfsDriver snapshots via `zfs snapshot` against the dataset backing
// path, mounts nothing extra (ZFS exposes snapshots under .zfs), and tars
// the frozen view into the CAS.
type zfsDriver struct {
	tarDriver
}

func (z *zfsDriver) Snapshot(ctx context.Context, path string) (types.Digest, error) {
	dataset, err := zfsDatasetFor(ctx, path)
	if err != nil {
		return "", err
	}
	snapName := dataset + "@capsule-snap"
	if out, err := exec.CommandContext(ctx, "zfs", "snapshot", snapName).CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: zfs snapshot: %v: %s", ErrSnapshotFailed, err, out)
	}
	defer func() {
		_ = exec.Command("zfs", "destroy", snapName).Run()
	}()
	frozen := filepath.Join(path, ".zfs", "snapshot", "capsule-snap")
	return z.tarDriver.Snapshot(ctx, frozen)
}

func zfsDatasetFor(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, "zfs", "list", "-H", "-o", "name", path).Output()
	if err != nil {
		return "", fmt.Errorf("%w: no zfs dataset backs %s: %v", ErrSnapshotFailed, path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

var zeroTime = time.Unix(0, 0)
