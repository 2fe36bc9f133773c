// Package document provides the line scanner that underlies the chunking
// pipeline: it turns raw markdown text into a stable, 1-indexed line table
// so every downstream stage can talk about "start_line"/"end_line" instead
// of byte offsets.
//
// CRLF sequences are normalized to LF for line indexing (so "\r\n" and "\n"
// produce the same line count), but the normalization happens before any
// other stage sees the text — no stage downstream of Scan ever reflows or
// collapses lines, since doing so would desynchronize a chunk's start/end
// line numbers from the original input.
package document
