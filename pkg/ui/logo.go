package ui

import "github.com/pterm/pterm"

const LogoASCII = `
      ____
     / __ \
    ( (__) )
   __|    |__
  /  |    |  \
 |   |____|   |
 |  ________  |
 |  \      /  |
  \  \    /  /
   \__\  /__/

   /==========\
  /            \
 /    swanky    \
 \              /
  \            /
   \==========/
`

func PrintBanner() {
	pterm.DefaultCenter.Println(pterm.NewRGB(255, 0, 152).Sprint(LogoASCII))
}
