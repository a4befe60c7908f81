package camera

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ConsolePrompter は標準入出力を使うPrompter実装
type ConsolePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewConsolePrompter は標準入出力に接続されたConsolePrompterを作成する
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// Show は1行を標準出力に表示する
func (p *ConsolePrompter) Show(line string) {
	fmt.Fprintln(p.writer, line)
}

// Prompt はメッセージを表示して1行を読み取る
// EOF（Ctrl-D）や割り込みによる読み取り失敗はキャンセルとして呼び出し側に返る
func (p *ConsolePrompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.writer, message)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return line, nil
}

// NonInteractivePrompter は対話できない環境のためのPrompter実装
// 表示は捨て、入力要求は常に失敗する。対話ポリシーを誤って
// 非対話環境で使った場合にプロンプトで固まるのを防ぐ
type NonInteractivePrompter struct{}

// NewNonInteractivePrompter は新しいNonInteractivePrompterを作成する
func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

// Show は何もしない
func (p *NonInteractivePrompter) Show(_ string) {}

// Prompt は常にエラーを返す
func (p *NonInteractivePrompter) Prompt(_ string) (string, error) {
	return "", fmt.Errorf("対話的な入力は利用できません")
}
