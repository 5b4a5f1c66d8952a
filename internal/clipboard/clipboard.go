// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package clipboard writes generated invocation text to the system
// clipboard. The write is fire-and-forget from the caller's perspective;
// failures are logged and returned for optional display only.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/aspectctl/aspectctl/internal/log"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		log.Debugf("clipboard write failed: err=%v", err)
		return err
	}
	log.Debugf("clipboard write: bytes=%d", len(text))
	return nil
}
