// snbadmin 維運指令：資料表遷移、帳號管理與刷新旗標
package main

func main() {
	Execute()
}
