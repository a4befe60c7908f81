package camera

// ProbeStatus はプローブの結果種別を表す
type ProbeStatus string

const (
	// ProbeUnavailable はデバイスが開けなかったことを表す（存在しないインデックスも含む）
	ProbeUnavailable ProbeStatus = "unavailable"
	// ProbeNoFrame はデバイスは開けたが最初のフレームが読み取れなかったことを表す
	ProbeNoFrame ProbeStatus = "no_frame"
	// ProbeWorking はデバイスが開けてフレームも読み取れたことを表す
	ProbeWorking ProbeStatus = "working"
)

// ProbeResult は1回のプローブの結果を表す
// 毎回のプローブで新しく生成され、キャッシュや変更はされない
type ProbeResult struct {
	Index   int         // デバイスインデックス
	Status  ProbeStatus // プローブ結果の種別
	Width   int         // 画像幅（ProbeWorkingのときのみ有効）
	Height  int         // 画像高さ（ProbeWorkingのときのみ有効）
	Backend string      // キャプチャバックエンド名（ProbeWorkingのときのみ有効）
}

// DeviceList は動作確認済みデバイスの一覧
// インデックスの昇順で並び、重複を含まない。返却後は変更されない
type DeviceList []ProbeResult

// Indexes はデバイスインデックスのみの一覧を返す
func (l DeviceList) Indexes() []int {
	indexes := make([]int, 0, len(l))
	for _, d := range l {
		indexes = append(indexes, d.Index)
	}
	return indexes
}

// Contains は指定インデックスが一覧に含まれるかチェックする
func (l DeviceList) Contains(index int) bool {
	for _, d := range l {
		if d.Index == index {
			return true
		}
	}
	return false
}

// Find は指定インデックスのエントリを返す
func (l DeviceList) Find(index int) (ProbeResult, bool) {
	for _, d := range l {
		if d.Index == index {
			return d, true
		}
	}
	return ProbeResult{}, false
}

// PolicyKind は選択ポリシーの種別を表す
type PolicyKind string

const (
	// PolicyExplicit は指定インデックスをそのまま使う
	// スキャン結果との照合は行わない。スキャン上限の外にあるデバイスなど、
	// 呼び出し側が別経路で把握しているインデックスを信頼して開くための仕様
	PolicyExplicit PolicyKind = "explicit"
	// PolicyAutoExternal は複数デバイスがある場合に最大インデックスを選ぶ
	// 後から接続された外付けカメラほど大きいインデックスになりやすい、という
	// ヒューリスティックであり、保証ではない
	PolicyAutoExternal PolicyKind = "auto_external"
	// PolicyAutoBuiltin は複数デバイスがある場合に最小インデックスを選ぶ
	PolicyAutoBuiltin PolicyKind = "auto_builtin"
	// PolicyInteractive はオペレーターに一覧を提示して選択させる
	PolicyInteractive PolicyKind = "interactive"
)

// Policy はデバイス選択ポリシーを表す
type Policy struct {
	Kind  PolicyKind // ポリシー種別
	Index int        // PolicyExplicitのときの対象インデックス
}

// Frame はキャプチャされた1フレームを表す
// ピクセルデータの表現はこのサブシステムの関心外で、寸法のみを公開する
type Frame interface {
	// Width はフレームの幅を返す
	Width() int

	// Height はフレームの高さを返す
	Height() int

	// Close はフレームのリソースを解放する
	Close()
}

// Device は開かれた1台のキャプチャデバイスへのOSセッションを表す
type Device interface {
	// ReadFrame は1フレームを読み取る
	// デバイスがクローズされた場合、ブロック中の読み取りはエラーで返る
	ReadFrame() (Frame, error)

	// Width はデバイスの画像幅を返す
	Width() int

	// Height はデバイスの画像高さを返す
	Height() int

	// Backend はキャプチャバックエンド名を返す
	Backend() string

	// Close はデバイスを解放する
	Close() error
}

// Opener はインデックス指定でキャプチャデバイスを開く機能を提供する
type Opener interface {
	// Open は指定インデックスのデバイスを開く
	// デバイスが存在しない・使用中などで開けない場合はエラーを返す
	Open(index int) (Device, error)
}

// Prompter は対話選択のための入出力コラボレーター
// Selectorに注入することで、テストではスクリプト入力、非対話環境では
// 即時失敗する実装に差し替えられる
type Prompter interface {
	// Show は1行をオペレーターに表示する
	Show(line string)

	// Prompt はメッセージを表示して1行の入力を読み取る
	// エラーはオペレーターによるキャンセル（EOF・割り込みなど）を意味する
	Prompt(message string) (string, error)
}
