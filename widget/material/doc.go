// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws curve previews with the Gio material theme.
package material
