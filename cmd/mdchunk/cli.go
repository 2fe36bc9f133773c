package main

// CLI is the top-level command structure.
type CLI struct {
	Chunk ChunkCmd `cmd:"" default:"withargs" help:"Chunk one or more markdown files"`
	Init  InitCmd  `cmd:"" help:"Initialize a .mdchunkrc configuration file"`
}
