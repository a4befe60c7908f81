package camera

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Selector は選択ポリシーに従って1台のデバイスを選ぶ
// 対話選択の入出力はPrompterとして注入されるため、直接コンソールには触れない
type Selector struct {
	prompter Prompter
}

// NewSelector は新しいSelectorを作成する
func NewSelector(prompter Prompter) *Selector {
	return &Selector{prompter: prompter}
}

// Select はポリシーに従ってデバイスインデックスを1つ選ぶ
// PolicyExplicit以外のポリシーは、一覧が空の場合ErrNoDevicesAvailableで失敗する。
// PolicyInteractive以外は入力に対する全域関数で、中断はできない
func (s *Selector) Select(ctx context.Context, policy Policy, devices DeviceList) (int, error) {
	if len(devices) == 0 && policy.Kind != PolicyExplicit {
		return 0, ErrNoDevicesAvailable
	}

	switch policy.Kind {
	case PolicyExplicit:
		// 呼び出し側を信頼し、スキャン結果との照合はしない
		// （スキャン上限が小さすぎた場合でも、既知のインデックスを開けるようにする）
		return policy.Index, nil

	case PolicyAutoExternal:
		// 大きいインデックスほど後から接続された外付けデバイスであることが多い
		return devices[len(devices)-1].Index, nil

	case PolicyAutoBuiltin:
		return devices[0].Index, nil

	case PolicyInteractive:
		return s.selectInteractive(ctx, devices)

	default:
		return 0, fmt.Errorf("未知の選択ポリシー: %s", policy.Kind)
	}
}

// selectInteractive はデバイス一覧をオペレーターに提示して選択させる
// 成功かキャンセルに達するまでループする、サブシステム内で唯一の中断点
func (s *Selector) selectInteractive(ctx context.Context, devices DeviceList) (int, error) {
	s.showDevices(devices)

	// 1台しか無ければ選ばせる意味がない
	if len(devices) == 1 {
		s.prompter.Show(fmt.Sprintf("カメラは1台のみです。カメラ %d を使用します", devices[0].Index))
		return devices[0].Index, nil
	}

	indexes := devices.Indexes()
	for {
		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %v", ErrSelectionCancelled, ctx.Err())
		default:
		}

		input, err := s.prompter.Prompt(fmt.Sprintf("カメラのインデックスを選択 %v (Enterで自動選択): ", indexes))
		if err != nil {
			// オペレーターによる中断。再試行せず直ちに伝播する
			return 0, fmt.Errorf("%w: %v", ErrSelectionCancelled, err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			// 空入力は外付け優先の自動選択と同じ挙動にする
			return s.Select(ctx, Policy{Kind: PolicyAutoExternal}, devices)
		}

		index, convErr := strconv.Atoi(input)
		if convErr != nil {
			s.prompter.Show("無効な入力です。数字を入力してください")
			continue
		}

		if !devices.Contains(index) {
			s.prompter.Show(fmt.Sprintf("カメラ %d は利用できません。%v から選択してください", index, indexes))
			continue
		}

		return index, nil
	}
}

// showDevices はデバイス一覧を特性付きで表示する
// 特性はスキャン時のプローブ結果を再利用するため、再プローブは行わない
func (s *Selector) showDevices(devices DeviceList) {
	s.prompter.Show("利用可能なカメラ:")
	for _, d := range devices {
		s.prompter.Show(fmt.Sprintf("  カメラ %d: %dx%d (%s)", d.Index, d.Width, d.Height, d.Backend))
	}
}
