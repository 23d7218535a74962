package contracts

type InputFlags struct {
	InputDir    string
	Output      string
	JpegQuality int
}
