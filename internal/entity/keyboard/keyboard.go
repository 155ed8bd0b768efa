package keyboard

// Button is one inline keyboard button; Data is what the chat sends back when it is pressed.
type Button struct {
	Text string
	Data string
}

// Menu is a list of button rows.
type Menu [][]Button
