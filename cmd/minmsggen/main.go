// Command minmsggen generates minmsg Shape, Pack and Unpack methods for
// struct types.
package main

import "github.com/rawbytedev/minmsg/cmd/minmsggen/cmd"

func main() {
	cmd.Execute()
}
