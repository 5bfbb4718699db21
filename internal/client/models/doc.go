// Package models defines the entities persisted in the local prompt
// document: prompts, folders, history entries, settings, the user profile
// and the sync bookkeeping record, plus the Document aggregate that owns
// them all.
//
// JSON field names are part of the on-storage contract: export files and
// documents written by earlier versions must keep decoding, so they are
// never renamed.
package models
