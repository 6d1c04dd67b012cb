// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import "errors"

// retryio recognizes exactly one semantic error of its own.
//
// Mental model:
//   - ErrInterrupted: the attempt produced nothing; try the same attempt again.
//   - everything else: a terminal outcome for this call, returned unchanged.
//
// Notes:
//   - ErrInterrupted is expected control flow, not a failure; resources use it
//     (or a wrapped syscall.EINTR, which IsInterrupted also matches) to say
//     "nothing happened, go again".
//   - An interrupted attempt must not have made progress: no bytes delivered,
//     no bytes accepted, no buffer state changed.

// ErrInterrupted means “the attempt was interrupted before making progress;
// retry it unchanged”.
// Linux analogy: EINTR — a signal arrived before any data moved.
// Next step: reissue the identical attempt.
var ErrInterrupted = errors.New("io: interrupted")
