// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements stateful curve previews. Drawing of a
// preview as a list row lives in the material subpackage.
package widget
