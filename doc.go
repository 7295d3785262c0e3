/*
Package piptcfg documents the piptcfg module.

This module is CLI-first and ships the piptcfg command:

	go install github.com/pipt-tools/piptcfg/cmd/piptcfg@latest

Most implementation packages in this repository are internal and are not a
stable public Go API.
*/
package piptcfg
