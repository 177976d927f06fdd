// Package assets downloads the texture pack.
package assets

import (
	"context"
	"errors"
	"fmt"
	"os"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads src into dst, replacing whatever dst held. src accepts
// any go-getter address: a local path, an archive URL, or a
// "git::https://host/repo.git//subdir" reference.
func Fetch(ctx context.Context, src, dst string) error {
	if src == "" {
		return errors.New("fetch assets: empty source")
	}
	if dst == "" {
		return errors.New("fetch assets: empty destination")
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}
	return nil
}

// Present reports whether dir exists and holds at least one entry.
func Present(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
