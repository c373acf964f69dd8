// Command motionctl commits, validates and converts motion transaction patches.
package main

func main() {
	execute()
}
