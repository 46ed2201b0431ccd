package entity

// 标准检查表模板：29个固定问题，item_id稳定不变。
// 答案序列必须始终与模板同数量同顺序持久化。
var checklistQuestions = []string{
	"O gancho apresenta trava de segurança em boas condições?",
	"O gancho está livre de trincas, deformações ou desgaste excessivo?",
	"Os cabos de aço estão livres de fios partidos ou amassamentos?",
	"A fixação do cabo de aço no tambor está adequada?",
	"As polias giram livremente e estão sem danos?",
	"O moitão está em boas condições e lubrificado?",
	"As correntes (quando aplicável) estão sem elos alongados ou desgastados?",
	"O freio de elevação atua corretamente ao soltar o comando?",
	"O freio de translação atua corretamente?",
	"O fim de curso superior de elevação está funcionando?",
	"O fim de curso inferior de elevação está funcionando?",
	"Os fins de curso de translação do carro estão funcionando?",
	"Os fins de curso de translação da ponte estão funcionando?",
	"A botoeira de comando está em boas condições e identificada?",
	"O botão de emergência interrompe todos os movimentos?",
	"O cabo da botoeira está sem emendas ou danos na isolação?",
	"O sinal sonoro de movimentação está funcionando?",
	"A sinalização luminosa (quando existente) está funcionando?",
	"Os trilhos de rolamento estão limpos e desobstruídos?",
	"As rodas de translação estão sem desgaste anormal?",
	"Os para-choques e batentes de fim de linha estão íntegros?",
	"A estrutura metálica está livre de trincas e deformações?",
	"As escadas e passarelas de acesso estão em boas condições?",
	"Os dispositivos de içamento auxiliares estão identificados e íntegros?",
	"A capacidade máxima está identificada e legível no equipamento?",
	"A área de operação está livre de pessoas e obstáculos?",
	"O operador está com os EPIs exigidos para a atividade?",
	"O painel elétrico está fechado e sem sinais de aquecimento?",
	"A inspeção anterior não apontou pendências ainda abertas?",
}

// ChecklistItemCount 模板固定项数
var ChecklistItemCount = len(checklistQuestions)

// DefaultChecklist 返回全部未作答的模板副本
func DefaultChecklist() []ChecklistItem {
	items := make([]ChecklistItem, len(checklistQuestions))
	for i, q := range checklistQuestions {
		items[i] = ChecklistItem{ItemID: i + 1, Question: q, Answer: AnswerUnselected}
	}
	return items
}

// MergeChecklist 把已有答案按item_id套到模板顺序上，
// 保证持久化序列与模板同数量同顺序，未知项被丢弃。
func MergeChecklist(answers []ChecklistItem) []ChecklistItem {
	byID := make(map[int]Answer, len(answers))
	for _, item := range answers {
		byID[item.ItemID] = item.Answer
	}
	merged := DefaultChecklist()
	for i := range merged {
		if answer, ok := byID[merged[i].ItemID]; ok {
			merged[i].Answer = answer
		}
	}
	return merged
}
